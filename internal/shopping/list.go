// Package shopping holds the shopping list built from recipe ingredients.
package shopping

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hammamikhairi/forkify/internal/domain"
)

// List maps generated item ids to items and remembers insertion order
// for display and export.
type List struct {
	items map[string]domain.ListItem
	order []string
}

// New creates an empty list.
func New() *List {
	return &List{items: make(map[string]domain.ListItem)}
}

// AddItem inserts a new item under a freshly generated id. Identical
// content always gets a distinct id.
func (l *List) AddItem(count *float64, unit, name string) domain.ListItem {
	item := domain.ListItem{
		ID:   uuid.NewString(),
		Unit: unit,
		Name: name,
	}
	if count != nil {
		v := *count
		item.Count = &v
	}
	l.items[item.ID] = item
	l.order = append(l.order, item.ID)
	return item
}

// DeleteItem removes the item with id. Unknown ids are a no-op and
// return false.
func (l *List) DeleteItem(id string) bool {
	if _, ok := l.items[id]; !ok {
		return false
	}
	delete(l.items, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// UpdateCount sets the count of item id from raw user input. Input that
// does not parse as a finite number is rejected and the stored count is
// left unchanged.
func (l *List) UpdateCount(id, raw string) bool {
	item, ok := l.items[id]
	if !ok {
		return false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	item.Count = &v
	l.items[id] = item
	return true
}

// Get returns the item with id.
func (l *List) Get(id string) (domain.ListItem, bool) {
	item, ok := l.items[id]
	return item, ok
}

// Items returns the items in insertion order.
func (l *List) Items() []domain.ListItem {
	out := make([]domain.ListItem, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.items[id])
	}
	return out
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }
