package lcdsvg

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
)

// FontCache provides thread-safe caching of parsed font resources for
// long-running hosts (an editor re-opening projects, a render service).
// The cache uses a simple LRU eviction policy when the maximum size is
// reached.
//
// Keys: file paths are used directly, assuming a path uniquely identifies
// the resource content; in-memory data is keyed by its SHA256 hash with a
// "sha256:" prefix so the two key spaces cannot collide.
type FontCache struct {
	mu        sync.RWMutex
	fonts     map[string]*cacheEntry
	lru       *lruList
	maxSize   int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	key     string
	font    *Font
	size    int64 // Approximate memory size in bytes
	lruNode *lruNode
}

type lruNode struct {
	key  string
	prev *lruNode
	next *lruNode
}

type lruList struct {
	head *lruNode
	tail *lruNode
}

// Global default cache for convenience
var defaultCache = NewFontCache(16)

// NewFontCache creates a new font cache with the specified maximum number
// of fonts. A maxSize of 0 or negative means unlimited cache size.
func NewFontCache(maxSize int) *FontCache {
	return &FontCache{
		fonts:   make(map[string]*cacheEntry),
		lru:     &lruList{},
		maxSize: maxSize,
	}
}

// LoadFontCached loads a font resource from the filesystem with caching
// in the package-level default cache. Safe for concurrent use.
func LoadFontCached(path string) (*Font, error) {
	return defaultCache.LoadFont(path)
}

// ParseFontCached parses a font resource from byte data with caching in
// the package-level default cache, keyed by the SHA256 of the data.
func ParseFontCached(data []byte) (*Font, error) {
	return defaultCache.ParseFont(data)
}

// LoadFont loads a font resource from the filesystem with caching.
// This method is safe for concurrent use.
func (c *FontCache) LoadFont(path string) (*Font, error) {
	if font := c.get(path); font != nil {
		return font, nil
	}

	font, err := LoadFont(path)
	if err != nil {
		return nil, err
	}

	c.put(path, font)
	return font, nil
}

// ParseFont parses a font resource from byte data with caching. The key
// is the SHA256 hash of the data, so identical content is cached once
// regardless of source. This method is safe for concurrent use.
func (c *FontCache) ParseFont(data []byte) (*Font, error) {
	hash := sha256.Sum256(data)
	key := "sha256:" + hex.EncodeToString(hash[:])

	if font := c.get(key); font != nil {
		return font, nil
	}

	font, err := ParseFontBytes(data)
	if err != nil {
		return nil, err
	}

	c.put(key, font)
	return font, nil
}

// get retrieves a font from the cache. The existence check takes a read
// lock so concurrent hits do not serialize; only the LRU bump needs the
// exclusive lock.
func (c *FontCache) get(key string) *Font {
	c.mu.RLock()
	entry, exists := c.fonts[key]
	c.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return nil
	}

	c.mu.Lock()
	c.lru.moveToFront(entry.lruNode)
	c.mu.Unlock()

	c.hits.Add(1)
	return entry.font
}

// put adds a font to the cache, evicting the least recently used entry
// when at capacity.
func (c *FontCache) put(key string, font *Font) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.fonts[key]; exists {
		return
	}

	if c.maxSize > 0 && len(c.fonts) >= c.maxSize {
		c.evictLRU()
	}

	node := c.lru.pushFront(key)
	c.fonts[key] = &cacheEntry{
		key:     key,
		font:    font,
		size:    estimateFontSize(font),
		lruNode: node,
	}
}

// evictLRU removes the least recently used font from the cache
func (c *FontCache) evictLRU() {
	if c.lru.tail == nil {
		return
	}

	key := c.lru.tail.key
	delete(c.fonts, key)
	c.lru.remove(c.lru.tail)
	c.evictions.Add(1)
}

// Clear removes all fonts from the cache.
// This method is safe for concurrent use.
func (c *FontCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fonts = make(map[string]*cacheEntry)
	c.lru = &lruList{}
}

// Stats returns cache statistics.
// This method is safe for concurrent use.
func (c *FontCache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.fonts)
	c.mu.RUnlock()

	return CacheStats{
		Size:      size,
		MaxSize:   c.maxSize,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// CacheStats contains cache performance statistics
type CacheStats struct {
	Size      int    // Current number of cached fonts
	MaxSize   int    // Maximum cache size
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of evictions
}

// HitRate returns the cache hit rate as a percentage (0-100)
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(total)
}

// estimateFontSize estimates the memory size of a font in bytes. Glyphs
// are fixed 8x5 bit grids stored as strings, so the estimate is simply
// per-glyph storage plus map overhead.
func estimateFontSize(font *Font) int64 {
	if font == nil {
		return 0
	}
	const perGlyph = GlyphRows*(GlyphCols+16) + 48 // rows + headers + map slot
	return int64(font.Len()) * perGlyph
}

// pushFront adds a new node at the front of the list and returns it.
func (l *lruList) pushFront(key string) *lruNode {
	node := &lruNode{key: key}
	if l.head == nil {
		l.head = node
		l.tail = node
		return node
	}
	node.next = l.head
	l.head.prev = node
	l.head = node
	return node
}

// moveToFront moves an existing node to the front of the list.
func (l *lruList) moveToFront(node *lruNode) {
	if node == nil || l.head == node {
		return
	}
	l.remove(node)
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
}

// remove unlinks a node from the list.
func (l *lruList) remove(node *lruNode) {
	if node == nil {
		return
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else if l.head == node {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else if l.tail == node {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
}
