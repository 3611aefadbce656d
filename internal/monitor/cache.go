package monitor

import "sync"

// ShapeCache memoizes shape-handle resolution. Entries never expire:
// shape handles are assumed stable while monitoring runs, so the first
// resolution of a handle is also the last.
//
// Only the sampling goroutine touches the cache today. The mutex keeps
// insertion safe anyway; two concurrent misses on the same handle may
// both resolve, with the last write winning, which is fine because
// resolution is idempotent.
type ShapeCache struct {
	mu       sync.Mutex
	resolver ShapeResolver
	labels   map[Shape]string
}

// NewShapeCache creates a cache over the given resolver.
func NewShapeCache(resolver ShapeResolver) *ShapeCache {
	return &ShapeCache{
		resolver: resolver,
		labels:   make(map[Shape]string),
	}
}

// Resolve returns the label for handle, consulting the underlying
// resolver at most once per distinct handle. There is no error path:
// resolvers map unrecognized handles to a synthesized fallback label.
func (c *ShapeCache) Resolve(handle Shape) string {
	c.mu.Lock()
	if label, ok := c.labels[handle]; ok {
		c.mu.Unlock()
		return label
	}
	c.mu.Unlock()

	// Resolution happens outside the lock so a slow resolver cannot
	// stall a concurrent hit on another handle.
	label := c.resolver.Resolve(handle)

	c.mu.Lock()
	c.labels[handle] = label
	c.mu.Unlock()
	return label
}

// Len returns the number of cached handles.
func (c *ShapeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.labels)
}
