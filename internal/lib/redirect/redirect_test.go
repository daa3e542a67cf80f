package redirect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNext(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"empty falls back", "", "/admin"},
		{"valid path kept", "/admin/projects", "/admin/projects"},
		{"root kept", "/", "/"},
		{"protocol relative rejected", "//evil.example", "/admin"},
		{"absolute url rejected", "https://evil.example/admin", "/admin"},
		{"relative path rejected", "admin/projects", "/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeNext(tt.next))
		})
	}
}
