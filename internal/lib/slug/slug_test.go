package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Summer Wedding", "summer-wedding"},
		{"mixed case", "Anna & Erik", "anna-erik"},
		{"underscores and dashes", "behind_the-scenes", "behind-the-scenes"},
		{"repeated separators", "a  --  b", "a-b"},
		{"trailing separator", "trailing space ", "trailing-space"},
		{"digits kept", "Top 10 Venues 2026", "top-10-venues-2026"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}
