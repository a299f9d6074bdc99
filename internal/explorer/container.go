package explorer

import (
	"slices"
	"sync"

	"country-explorer/internal/view"
)

// RenderTarget receives rendered items. Clear empties it, Append adds to its end.
type RenderTarget interface {
	Clear()
	Append(items ...view.Item)
}

// Container is an in-memory RenderTarget accumulating items across pages.
type Container struct {
	mu    sync.RWMutex
	items []view.Item
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Container) Append(items ...view.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, items...)
}

// Items returns a copy of the rendered items.
func (c *Container) Items() []view.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
