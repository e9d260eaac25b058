package syntax

// DefaultCacheSize is the number of lines a Cache keeps by default.
const DefaultCacheSize = 1000

// Cache memoizes line spans for one rule set. Entries are validated
// against the line text, so edits need no explicit invalidation.
type Cache struct {
	rules   *RuleSet
	lines   map[int]cachedLine
	maxSize int
}

type cachedLine struct {
	text  string
	spans []Span
}

// NewCache creates a cache for rs holding at most maxSize lines.
func NewCache(rs *RuleSet, maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &Cache{
		rules:   rs,
		lines:   make(map[int]cachedLine),
		maxSize: maxSize,
	}
}

// Rules returns the active rule set.
func (c *Cache) Rules() *RuleSet {
	return c.rules
}

// SetRules switches the active rule set and drops all cached lines.
func (c *Cache) SetRules(rs *RuleSet) {
	c.rules = rs
	c.Invalidate()
}

// Spans returns the class spans of text, which is the content of row.
func (c *Cache) Spans(row int, text string) []Span {
	if cl, ok := c.lines[row]; ok && cl.text == text {
		return cl.spans
	}
	spans := c.rules.Spans(text)
	if len(c.lines) >= c.maxSize {
		c.evict(row)
	}
	c.lines[row] = cachedLine{text: text, spans: spans}
	return spans
}

// Invalidate drops all cached lines.
func (c *Cache) Invalidate() {
	clear(c.lines)
}

// Len returns the number of cached lines.
func (c *Cache) Len() int {
	return len(c.lines)
}

// evict drops the half of the cache farthest from row.
func (c *Cache) evict(row int) {
	limit := c.maxSize / 2
	for r := range c.lines {
		if len(c.lines) <= limit {
			return
		}
		if d := r - row; d > limit || -d > limit {
			delete(c.lines, r)
		}
	}
	if len(c.lines) >= c.maxSize {
		c.Invalidate()
	}
}
