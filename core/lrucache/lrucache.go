// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package lrucache provides a thread-safe, fixed-capacity least-recently-used (LRU)
cache of strings. The cache evicts the least recently used entry when it reaches
capacity. When created with compression enabled via [New], values are stored
zstd-compressed whenever that makes them smaller, and are transparently
decompressed by [Cache.Get] and [Cache.Peek].

Package i18n uses it to remember translations that do not format with the
arguments of their msgid, which keep their full text as the value.
*/
package lrucache

import (
	"container/list"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidSize = errors.New("must provide a positive size")

// Cache is a fixed-capacity, least-recently-used cache that is safe for concurrent use.
// Instances must be constructed with [New]; the zero value is not ready for use.
type Cache struct {
	size      int                      // Maximum number of entries
	evictList *list.List               // Front is the most recently used entry
	items     map[string]*list.Element // Maps keys to their list elements
	lock      sync.Mutex

	zstdEnc *zstd.Encoder // nil when compression is disabled
	zstdDec *zstd.Decoder
}

// entry holds the key/value pair stored in each linked-list element.
// When compressed is set, value holds zstd-compressed bytes.
type entry struct {
	key        string
	value      string
	compressed bool
}

// New creates a new cache with the specified maximum size.
//
// It returns an error if size is not a positive integer or if the zstd
// codec cannot be created.
func New(size int, compress bool) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Cache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}

	if compress {
		// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, err
		}

		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}

		c.zstdEnc = enc
		c.zstdDec = dec
	}

	return c, nil
}

// Add adds or updates the value for key and marks it most recently used.
// Add reports whether an eviction occurred.
func (c *Cache) Add(key, value string) bool {
	stored, compressed := c.encode(value)

	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.items[key]; ok {
		c.evictList.MoveToFront(el)

		e := el.Value.(*entry)
		e.value = stored
		e.compressed = compressed

		return false
	}

	c.items[key] = c.evictList.PushFront(&entry{key: key, value: stored, compressed: compressed})

	evicted := c.evictList.Len() > c.size
	if evicted {
		c.removeElement(c.evictList.Back())
	}

	return evicted
}

// Get returns the value for key and marks it most recently used.
func (c *Cache) Get(key string) (string, bool) {
	c.lock.Lock()

	el, ok := c.items[key]
	if !ok {
		c.lock.Unlock()

		return "", false
	}

	c.evictList.MoveToFront(el)
	e := *el.Value.(*entry)

	c.lock.Unlock()

	return c.decode(e)
}

// Peek returns the value for key without changing the LRU order.
func (c *Cache) Peek(key string) (string, bool) {
	c.lock.Lock()

	el, ok := c.items[key]
	if !ok {
		c.lock.Unlock()

		return "", false
	}

	e := *el.Value.(*entry)

	c.lock.Unlock()

	return c.decode(e)
}

// Remove deletes key and reports whether it was present.
func (c *Cache) Remove(key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)

		return true
	}

	return false
}

// Len returns the current number of items in the cache.
func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.evictList.Len()
}

func (c *Cache) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}

// encode compresses value when compression is enabled and the result is
// smaller. The zstd Encoder supports concurrent EncodeAll calls, so this
// runs without the lock.
func (c *Cache) encode(value string) (string, bool) {
	if c.zstdEnc == nil || value == "" {
		return value, false
	}

	comp := c.zstdEnc.EncodeAll([]byte(value), nil)
	if len(comp) >= len(value) {
		return value, false
	}

	return string(comp), true
}

// decode reverses encode. A value that fails to decompress is reported as absent.
func (c *Cache) decode(e entry) (string, bool) {
	if !e.compressed {
		return e.value, true
	}

	out, err := c.zstdDec.DecodeAll([]byte(e.value), nil)
	if err != nil {
		return "", false
	}

	return string(out), true
}
