package lumen

import "sync"

// entry is single key-value pair in local layer of context.
type entry struct {
	key   string
	value Value
}

// Context is ordered mapping of string keys to values attached to logger.
// Context optionally has parent context; key lookup falls back to parent
// chain, but all writes stay in local layer, so sibling contexts derived
// from same parent never observe each other's changes.
//
// Parent reference is fixed at creation and never reassigned, which makes
// context chains a tree and cycles impossible.
type Context struct {
	mu      sync.RWMutex
	parent  *Context
	entries []entry
	index   map[string]int
}

// NewContext creates new context with empty local layer and provided
// parent as lookup fallback. Parent may be nil. No data is copied from
// parent, layers are structurally shared.
func NewContext(parent *Context) *Context {
	return &Context{
		parent: parent,
		index:  make(map[string]int),
	}
}

// Derive creates new empty context whose parent is this context.
func (c *Context) Derive() *Context {
	return NewContext(c)
}

// Set inserts or overwrites key in local layer only. Overwriting existing
// local key keeps that key's original insertion position, new key is
// appended at the end. Unsupported value types are rejected with
// ErrUnsupportedValueType and leave context unchanged.
func (c *Context) Set(key string, value interface{}) error {
	v, err := valueOf(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.index[key]; ok {
		c.entries[i].value = v
		return nil
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry{key: key, value: v})
	return nil
}

// Get returns value stored under provided key. Local layer is checked
// first, then parent chain is walked up. Second return value indicates
// if key was found in any layer.
func (c *Context) Get(key string) (Value, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		ctx.mu.RLock()
		i, ok := ctx.index[key]
		var v Value
		if ok {
			v = ctx.entries[i].value
		}
		ctx.mu.RUnlock()
		if ok {
			return v, true
		}
	}
	return Value{}, false
}

// Len returns number of keys in local layer of this context.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns keys of local layer in insertion order.
func (c *Context) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

// ResolveAll merges full ancestor chain into single ordered view, root
// to leaf. Key set in more specific (deeper) layer overrides same key
// from ancestor and takes the deeper layer's insertion position in final
// order, which keeps rendering deterministic.
func (c *Context) ResolveAll() []Field {
	// Collect chain leaf to root, then merge in reverse.
	chain := make([]*Context, 0, 4)
	for ctx := c; ctx != nil; ctx = ctx.parent {
		chain = append(chain, ctx)
	}

	var fields []Field
	pos := make(map[string]int)
	for i := len(chain) - 1; i >= 0; i-- {
		ctx := chain[i]
		ctx.mu.RLock()
		layer := make([]entry, len(ctx.entries))
		copy(layer, ctx.entries)
		ctx.mu.RUnlock()

		for _, e := range layer {
			if j, ok := pos[e.key]; ok {
				// deeper layer takes over both value and position
				fields = append(fields[:j], fields[j+1:]...)
				for k := j; k < len(fields); k++ {
					pos[fields[k].Key] = k
				}
			}
			pos[e.key] = len(fields)
			fields = append(fields, Field{Key: e.key, Value: e.value})
		}
	}
	return fields
}
