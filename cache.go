package msgfmt

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	locale string
	rule   PluralRule
}

// RuleCache is a bounded LRU cache of constructed plural rules, keyed by
// locale. It amortizes rule construction across format calls. The engine
// never creates or destroys a cache on its own; ownership stays with the
// caller, which may share one instance across goroutines — all operations
// are guarded by an internal mutex.
type RuleCache struct {
	mu       sync.Mutex
	maxSize  int
	items    map[string]*list.Element
	eviction *list.List
}

// NewRuleCache creates a rule cache holding at most maxSize entries.
// A maxSize of zero (or less) degenerates to no caching: Set never retains.
func NewRuleCache(maxSize int) *RuleCache {
	return &RuleCache{
		maxSize:  maxSize,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// Get retrieves the rule cached for locale and marks it most recently used.
func (c *RuleCache) Get(locale string) (PluralRule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[locale]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).rule, true
	}
	return nil, false
}

// Set stores the rule for locale. An existing entry is updated in place;
// a new entry beyond capacity evicts the least recently used one.
func (c *RuleCache) Set(locale string, rule PluralRule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize <= 0 {
		return
	}
	if elem, ok := c.items[locale]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).rule = rule
		return
	}

	elem := c.eviction.PushFront(&cacheEntry{locale: locale, rule: rule})
	c.items[locale] = elem

	if c.eviction.Len() > c.maxSize {
		oldest := c.eviction.Back()
		if oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).locale)
		}
	}
}

// Clear removes all entries.
func (c *RuleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

// Size returns the current entry count.
func (c *RuleCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
