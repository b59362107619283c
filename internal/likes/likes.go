// Package likes holds the persisted collection of liked recipes.
package likes

import (
	"context"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// Likes is an ordered collection with at most one entry per recipe id.
// Every mutation writes the whole collection to the store.
type Likes struct {
	items []domain.Like
	store domain.LikesStore
	log   *logger.Logger
}

// New creates an empty collection backed by store.
func New(store domain.LikesStore, log *logger.Logger) *Likes {
	return &Likes{store: store, log: log.With("likes")}
}

// Restore replaces the collection with what the store holds. A failing or
// corrupt store leaves the collection empty.
func (l *Likes) Restore(ctx context.Context) {
	stored, err := l.store.Load(ctx)
	if err != nil {
		l.log.Warn("restore failed, starting empty: %v", err)
		l.items = nil
		return
	}

	l.items = l.items[:0]
	seen := make(map[string]bool, len(stored))
	for _, like := range stored {
		if like.ID == "" || seen[like.ID] {
			continue
		}
		seen[like.ID] = true
		l.items = append(l.items, like)
	}
	l.log.Debug("restored %d likes", len(l.items))
}

// Add appends like unless its id is already present. The second return
// value reports whether anything was added.
func (l *Likes) Add(ctx context.Context, like domain.Like) (domain.Like, bool) {
	if l.IsLiked(like.ID) {
		return like, false
	}
	l.items = append(l.items, like)
	l.persist(ctx)
	return like, true
}

// Delete removes the entry for id. Unknown ids are a no-op and do not
// touch the store.
func (l *Likes) Delete(ctx context.Context, id string) bool {
	for i, like := range l.items {
		if like.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persist(ctx)
			return true
		}
	}
	return false
}

// IsLiked reports whether id is in the collection.
func (l *Likes) IsLiked(id string) bool {
	for _, like := range l.items {
		if like.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of likes.
func (l *Likes) Count() int { return len(l.items) }

// All returns a copy of the collection in insertion order.
func (l *Likes) All() []domain.Like {
	out := make([]domain.Like, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Likes) persist(ctx context.Context) {
	if err := l.store.Save(ctx, l.All()); err != nil {
		l.log.Warn("persist failed, keeping %d likes in memory: %v", len(l.items), err)
	}
}
