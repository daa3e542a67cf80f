package cache

import (
	"testing"
	"time"

	"nordlys_studio/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestCache() *Cache {
	return New(time.Minute, time.Minute)
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache()

	c.Set(KeyReviews, []string{"a", "b"})

	got, ok := c.Get(KeyReviews)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = c.Get(KeyFeaturedReviews)
	assert.False(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	c := newTestCache()

	c.Set(KeyReviews, 1)
	c.Set(KeyFeaturedReviews, 2)

	c.Invalidate(KeyReviews, KeyFeaturedReviews)

	_, ok := c.Get(KeyReviews)
	assert.False(t, ok)
	_, ok = c.Get(KeyFeaturedReviews)
	assert.False(t, ok)
}

func TestCache_InvalidateProjects(t *testing.T) {
	c := newTestCache()

	c.Set(KeyProjects(""), 1)
	c.Set(KeyProjects("wedding-photo"), 2)
	c.Set(KeyProject("anna-erik"), 3)
	c.Set(KeyProjectMedia("anna-erik"), 4)
	c.Set(KeyDashboardStats, 5)
	c.Set(KeyPage("about"), 6)

	c.InvalidateProjects()

	for _, key := range []string{
		KeyProjects(""),
		KeyProjects("wedding-photo"),
		KeyProject("anna-erik"),
		KeyProjectMedia("anna-erik"),
		KeyDashboardStats,
	} {
		_, ok := c.Get(key)
		assert.False(t, ok, key)
	}

	// Unrelated keys survive.
	_, ok := c.Get(KeyPage("about"))
	assert.True(t, ok)
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := newTestCache()

	c.Set(KeyBlogPost("first"), 1)
	c.Set(KeyBlogList(1, 10), 2)
	c.Set(KeyReviews, 3)

	c.InvalidatePrefix("blog")

	_, ok := c.Get(KeyBlogPost("first"))
	assert.False(t, ok)
	_, ok = c.Get(KeyBlogList(1, 10))
	assert.False(t, ok)
	_, ok = c.Get(KeyReviews)
	assert.True(t, ok)
}

func TestCache_InvalidateCountsPerResource(t *testing.T) {
	c := newTestCache()

	c.Set(KeyReviews, 1)
	c.Set(KeyFeaturedReviews, 2)

	counter := metrics.CacheInvalidationsTotal.WithLabelValues("reviews")
	before := testutil.ToFloat64(counter)

	c.Invalidate(KeyReviews, KeyFeaturedReviews)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestCache_InvalidatePrefixCountsResource(t *testing.T) {
	c := newTestCache()

	c.Set(KeyBlogPost("first"), 1)

	counter := metrics.CacheInvalidationsTotal.WithLabelValues("blog")
	before := testutil.ToFloat64(counter)

	c.InvalidatePrefix("blog")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
