package repository

import "github.com/samber/lo"

// collection is an insertion-ordered list of shared entity pointers.
type collection[T any] struct {
	items []*T
}

func (c *collection[T]) List() []*T {
	if c.items == nil {
		return []*T{}
	}
	return c.items
}

func (c *collection[T]) Count() int {
	return len(c.items)
}

func (c *collection[T]) Add(item *T) {
	c.items = append(c.items, item)
}

// Remove drops item by identity and reports whether it was present.
func (c *collection[T]) Remove(item *T) bool {
	idx := lo.IndexOf(c.items, item)
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return true
}

func (c *collection[T]) Find(predicate func(item *T) bool) (*T, bool) {
	return lo.Find(c.items, predicate)
}

func (c *collection[T]) Filter(predicate func(item *T) bool) []*T {
	return lo.Filter(c.items, func(item *T, _ int) bool {
		return predicate(item)
	})
}

func (c *collection[T]) Replace(items []*T) {
	c.items = items
}
