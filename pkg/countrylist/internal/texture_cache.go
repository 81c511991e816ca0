package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// destroyer is the part of *sdl.Texture the cache needs.
type destroyer interface {
	Destroy() error
}

// lruCache keeps at most maxSize values and destroys what it evicts.
type lruCache[V destroyer] struct {
	values  map[string]V
	order   []string // least recently used first
	maxSize int
}

func newLRUCache[V destroyer](maxSize int) *lruCache[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &lruCache[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *lruCache[V]) Get(key string) (V, bool) {
	v, ok := c.values[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

func (c *lruCache[V]) Set(key string, v V) {
	if old, ok := c.values[key]; ok {
		old.Destroy()
		c.values[key] = v
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = v
	c.order = append(c.order, key)
}

func (c *lruCache[V]) Len() int {
	return len(c.order)
}

func (c *lruCache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *lruCache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, ok := c.values[oldest]; ok {
		v.Destroy()
		delete(c.values, oldest)
	}
}

func (c *lruCache[V]) Destroy() {
	for _, v := range c.values {
		v.Destroy()
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}

// TextureCache holds rendered row text and flag textures keyed by content.
type TextureCache struct {
	*lruCache[*sdl.Texture]
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{newLRUCache[*sdl.Texture](maxSize)}
}
