package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openapigen/openapigen/config"
	"github.com/openapigen/openapigen/parser"
)

// specInput represents the two ways an OpenAPI description can be provided
// to a tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI 3.0/3.1 file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// configInput is the optional shared-type configuration. At most one of File
// or Content may be set; neither means no shared types.
type configInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a shared-type configuration file"`
	Content string `json:"content,omitempty" jsonschema:"Inline shared-type configuration (JSON or YAML)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *parser.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// specCacheStore provides a session-scoped cache for parsed specs.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash.
// Entries have per-type TTLs and a background sweeper removes expired entries.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the oldest entry if at capacity.
func (c *specCacheStore) putWithTTL(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	// If already cached, just update.
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	// Evict oldest if at capacity.
	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	var sweeping atomic.Bool
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !sweeping.CompareAndSwap(false, true) {
					continue
				}
				c.sweep()
				sweeping.Store(false)
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given spec input.
func makeCacheKey(s specInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		return "content:" + contentHash(s.Content)
	default:
		return ""
	}
}

func contentHash(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

// checkInlineSize enforces the inline content size limit.
func checkInlineSize(what, content string) error {
	if int64(len(content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline %s size %d bytes exceeds maximum %d bytes; use file input instead, or set OPENAPIGEN_MAX_INLINE_SIZE to increase",
			what, len(content), cfg.MaxInlineSize)
	}
	return nil
}

// resolve parses the description from whichever input was provided, using
// the cache for both file and content inputs.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if (s.File == "") == (s.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if err := checkInlineSize("content", s.Content); err != nil {
		return nil, err
	}

	// Determine cache key and TTL (skip when caching is disabled).
	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
		ttl = cfg.CacheContentTTL
		if s.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}

	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var opt parser.Option
	if s.File != "" {
		opt = parser.WithFilePath(s.File)
	} else {
		opt = parser.WithReader(strings.NewReader(s.Content))
	}
	result, err := parser.ParseWithOptions(opt)
	if err != nil {
		return nil, err
	}

	if key != "" {
		specCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}

// resolve loads the shared-type table. Configuration is small and is not
// cached.
func (c configInput) resolve() (*config.Config, error) {
	switch {
	case c.File != "" && c.Content != "":
		return nil, fmt.Errorf("at most one of config file or config content may be provided")
	case c.File != "":
		return config.Load(c.File)
	case c.Content != "":
		if err := checkInlineSize("config", c.Content); err != nil {
			return nil, err
		}
		return config.Parse([]byte(c.Content))
	default:
		return config.Empty(), nil
	}
}
