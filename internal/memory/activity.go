package memory

import (
	"context"
	"sync"

	"github.com/planops/ruleboard/internal/domain/activity"
)

// ActivityStore implements activity.Repository. Entries are assigned
// sequential ids and listed newest first.
type ActivityStore struct {
	mu      sync.RWMutex
	entries []activity.Entry
	nextID  int64
}

// NewActivityStore creates an empty activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{nextID: 1}
}

// Append stores an entry and assigns its id.
func (s *ActivityStore) Append(_ context.Context, entry *activity.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, *entry)
	return nil
}

// List returns entries newest first, filtered by the options.
func (s *ActivityStore) List(_ context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]activity.Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if opts.RuleID != "" && e.RuleID != opts.RuleID {
			continue
		}
		if opts.User != "" && e.User != opts.User {
			continue
		}
		if opts.Action != nil && e.Action != *opts.Action {
			continue
		}
		matched = append(matched, e)
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}
