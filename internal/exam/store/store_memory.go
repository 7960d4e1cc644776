package store

import (
	"context"
	"sync"
	"time"

	"climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
	"climbreg/pkg/platform/sentinel"
)

// ErrNotFound is returned on a cache miss, including expired entries.
var ErrNotFound = sentinel.ErrNotFound

type cachedCertificate struct {
	record   models.Certificate
	storedAt time.Time
}

// InMemoryCache keeps resolved certificates in process memory with a TTL.
type InMemoryCache struct {
	mu           sync.RWMutex
	certificates map[id.IDCode]cachedCertificate
	cacheTTL     time.Duration
	now          func() time.Time
}

// NewInMemoryCache creates a new in-memory cache with the specified TTL.
func NewInMemoryCache(cacheTTL time.Duration) *InMemoryCache {
	return &InMemoryCache{
		certificates: make(map[id.IDCode]cachedCertificate),
		cacheTTL:     cacheTTL,
		now:          time.Now,
	}
}

// WithClock replaces the cache's time source; used by tests.
func (c *InMemoryCache) WithClock(now func() time.Time) *InMemoryCache {
	c.now = now
	return c
}

func (c *InMemoryCache) Backend() string {
	return "memory"
}

// FindCertificate returns the cached certificate for code, or ErrNotFound if
// it is missing or older than the cache TTL.
func (c *InMemoryCache) FindCertificate(_ context.Context, code id.IDCode) (*models.Certificate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.certificates[code]; ok {
		if c.now().Sub(cached.storedAt) < c.cacheTTL {
			record := cached.record
			return &record, nil
		}
	}
	return nil, ErrNotFound
}

// SaveCertificate stores record under its identity code. A nil record is a
// no-op.
func (c *InMemoryCache) SaveCertificate(_ context.Context, record *models.Certificate) error {
	if record == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.certificates[record.IDCode] = cachedCertificate{record: *record, storedAt: c.now()}
	return nil
}

// Invalidate drops the entry for code.
func (c *InMemoryCache) Invalidate(_ context.Context, code id.IDCode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.certificates, code)
	return nil
}
