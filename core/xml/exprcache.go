package xml

import (
	"container/list"
	"sync"

	"github.com/antchfx/xpath"
)

// DefaultExprCacheSize is the number of compiled XPath expressions kept.
const DefaultExprCacheSize = 128

// ExprStats contains expression cache statistics.
type ExprStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

type exprEntry struct {
	src  string
	expr *xpath.Expr
}

// exprCache is a thread-safe LRU of compiled expressions keyed by source.
type exprCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*list.Element
	order   *list.List
	stats   ExprStats
}

func newExprCache(max int) *exprCache {
	if max < 1 {
		max = 1
	}
	return &exprCache{max: max, entries: make(map[string]*list.Element), order: list.New()}
}

var exprs = newExprCache(DefaultExprCacheSize)

// compile returns the compiled form of src, compiling it on a miss.
// Invalid expressions are not cached.
func (c *exprCache) compile(src string) (*xpath.Expr, error) {
	c.mu.Lock()
	if el, ok := c.entries[src]; ok {
		c.order.MoveToFront(el)
		c.stats.Hits++
		e := el.Value.(*exprEntry)
		c.mu.Unlock()
		return e.expr, nil
	}
	c.stats.Misses++
	c.mu.Unlock()

	expr, err := xpath.Compile(src)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[src]; ok {
		return el.Value.(*exprEntry).expr, nil
	}
	c.entries[src] = c.order.PushFront(&exprEntry{src: src, expr: expr})
	if c.order.Len() > c.max {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*exprEntry).src)
		c.stats.Evictions++
	}
	return expr, nil
}

func (c *exprCache) snapshot() ExprStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Size = c.order.Len()
	return s
}

// CacheStats reports the shared XPath expression cache statistics.
func CacheStats() ExprStats { return exprs.snapshot() }
