package server

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"atscore/internal/types"
)

// ReportCache is an in-process TTL cache for analysis reports keyed by the
// full input content. Expired entries are dropped lazily on access and
// swept opportunistically on writes; there is no background goroutine to
// manage.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	report    *types.Report
	expiresAt time.Time
}

// NewReportCache creates a cache with the given entry TTL
func NewReportCache(ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ReportCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Key derives the cache key for an analysis input. Any change to the
// resume text, job context, or industry override produces a different key.
func (c *ReportCache) Key(input types.AnalyzeInput) string {
	h := sha256.New()
	h.Write([]byte(input.ResumeText))
	h.Write([]byte{0})
	h.Write([]byte(input.JobTitle))
	h.Write([]byte{0})
	h.Write([]byte(input.JobDescription))
	h.Write([]byte{0})
	h.Write([]byte(input.Industry))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached report for the key, if present and fresh
func (c *ReportCache) Get(key string) (*types.Report, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// replaced the entry
		if current, still := c.entries[key]; still && time.Now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.report, true
}

// Set stores a report under the key and sweeps any expired entries
func (c *ReportCache) Set(key string, report *types.Report) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{
		report:    report,
		expiresAt: now.Add(c.ttl),
	}
}

// Len returns the number of entries currently held, including any that
// have expired but not yet been swept
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cache statistics for the stats endpoint
func (c *ReportCache) Stats() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]any{
		"entries":     len(c.entries),
		"ttl_seconds": c.ttl.Seconds(),
	}
}
