package cache

import (
	"strconv"
	"strings"
	"time"

	"nordlys_studio/internal/metrics"

	gocache "github.com/patrickmn/go-cache"
)

// Query-result cache keyed by resource identifier. Services store public
// read results here and invalidate the matching keys synchronously after
// every successful mutation, so a read issued right after a mutation always
// observes it.

const (
	KeyHeroSlides      = "hero_slides"
	KeyReviews         = "reviews"
	KeyFeaturedReviews = "reviews:featured"
	KeyNavigation      = "cms:navigation"
	KeyLanding         = "cms:landing"
	KeySettings        = "settings"
	KeyBlockedDates    = "blocked_dates"
	KeyDashboardStats  = "stats:dashboard"

	prefixProjects = "projects"
	prefixPages    = "pages"
	prefixBlog     = "blog"
)

func KeyProjects(category string) string {
	if category == "" {
		return prefixProjects + ":all"
	}
	return prefixProjects + ":" + category
}

func KeyProject(slug string) string      { return prefixProjects + ":slug:" + slug }
func KeyProjectMedia(slug string) string { return prefixProjects + ":media:" + slug }
func KeyPage(slug string) string         { return prefixPages + ":" + slug }
func KeyBlogPost(slug string) string     { return prefixBlog + ":" + slug }
func KeyBlogList(page, perPage int) string {
	return prefixBlog + ":list:" + strconv.Itoa(page) + ":" + strconv.Itoa(perPage)
}

type Cache struct {
	c *gocache.Cache
}

func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{c: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.c.Get(key)
}

func (c *Cache) Set(key string, value interface{}) {
	c.c.Set(key, value, gocache.DefaultExpiration)
}

// resource is the metric label, the key part before the first colon.
func resource(key string) string {
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i]
	}
	return key
}

// Invalidate drops the given keys.
func (c *Cache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.c.Delete(key)
		metrics.CacheInvalidationsTotal.WithLabelValues(resource(key)).Inc()
	}
}

// InvalidatePrefix drops every key under a resource prefix, e.g. all cached
// project lists regardless of category filter.
func (c *Cache) InvalidatePrefix(prefix string) {
	for key := range c.c.Items() {
		if strings.HasPrefix(key, prefix) {
			c.c.Delete(key)
		}
	}
	metrics.CacheInvalidationsTotal.WithLabelValues(resource(prefix)).Inc()
}

func (c *Cache) InvalidateProjects() {
	c.InvalidatePrefix(prefixProjects)
	c.Invalidate(KeyDashboardStats)
}

func (c *Cache) InvalidatePages() { c.InvalidatePrefix(prefixPages) }
func (c *Cache) InvalidateBlog()  { c.InvalidatePrefix(prefixBlog) }
