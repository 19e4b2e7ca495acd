package replcache

import (
	"container/list"
	"sync"

	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

// Entry is one cached line's lattice and the words it was built from.
type Entry struct {
	Lattice tokenizer.Lattice
	Words   []string
}

// LRU is a thread-safe least-recently-used cache of Entry values keyed by
// the xxhash of a normalized input line.
type LRU struct {
	maxSize int
	mu      sync.RWMutex
	items   map[uint64]*list.Element
	order   *list.List
}

type cacheEntry struct {
	key   uint64
	value Entry
}

// New creates an LRU cache holding at most maxSize entries. A non-positive
// maxSize falls back to a default of 100, since an unbounded REPL cache
// would otherwise grow for the life of an interactive session.
func New(maxSize int) *LRU {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &LRU{
		maxSize: maxSize,
		items:   make(map[uint64]*list.Element),
		order:   list.New(),
	}
}

// Get retrieves a value and marks it as recently used.
func (c *LRU) Get(key uint64) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).value, true
	}
	return Entry{}, false
}

// Set adds or updates a value, evicting the least-recently-used entry if
// the cache is over capacity.
func (c *LRU) Set(key uint64, value Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.items[key] = elem

	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Size returns the current number of cached entries.
func (c *LRU) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}
