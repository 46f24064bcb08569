package memory

import (
	"context"
	"sync"

	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/repository"
)

// RuleStore implements rule.Repository over an ordered in-memory slice.
// Rules are addressed by immutable store id or by business identifier;
// deletion is by business identifier, matching the screens.
type RuleStore struct {
	mu    sync.RWMutex
	rules []rule.Rule
}

// NewRuleStore creates an empty rule store.
func NewRuleStore() *RuleStore {
	return &RuleStore{}
}

// Create appends a rule; both identifiers must be unused.
func (s *RuleStore) Create(_ context.Context, r *rule.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, have := range s.rules {
		if have.ID == r.ID || have.RuleID == r.RuleID {
			return repository.ErrDuplicate
		}
	}
	s.rules = append(s.rules, *r)
	return nil
}

// Get returns a rule by store id.
func (s *RuleStore) Get(_ context.Context, id string) (*rule.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rules {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByRuleID returns a rule by business identifier.
func (s *RuleStore) GetByRuleID(_ context.Context, ruleID string) (*rule.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rules {
		if r.RuleID == ruleID {
			out := r
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update replaces the rule with the same store id, keeping its position.
func (s *RuleStore) Update(_ context.Context, r *rule.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, have := range s.rules {
		if have.ID == r.ID {
			s.rules[i] = *r
			return nil
		}
	}
	return repository.ErrNotFound
}

// DeleteByRuleID removes a rule by business identifier.
func (s *RuleStore) DeleteByRuleID(_ context.Context, ruleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, have := range s.rules {
		if have.RuleID == ruleID {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// List returns all rules in insertion order.
func (s *RuleStore) List(_ context.Context) ([]rule.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]rule.Rule(nil), s.rules...), nil
}

// Replace swaps the entire contents, used when seeding sample data.
func (s *RuleStore) Replace(rules []rule.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append([]rule.Rule(nil), rules...)
}
