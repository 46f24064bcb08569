package mocks

import (
	"context"

	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/stretchr/testify/mock"
)

// RuleRepository is a mock for rule.Repository.
type RuleRepository struct {
	mock.Mock
}

func (m *RuleRepository) Create(ctx context.Context, r *rule.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RuleRepository) Get(ctx context.Context, id string) (*rule.Rule, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*rule.Rule); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RuleRepository) GetByRuleID(ctx context.Context, ruleID string) (*rule.Rule, error) {
	args := m.Called(ctx, ruleID)
	if r, ok := args.Get(0).(*rule.Rule); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RuleRepository) Update(ctx context.Context, r *rule.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RuleRepository) DeleteByRuleID(ctx context.Context, ruleID string) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

func (m *RuleRepository) List(ctx context.Context) ([]rule.Rule, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]rule.Rule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Append(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivitySink is a recording mock for activity.Sink.
type ActivitySink struct {
	Entries []activity.Entry
}

func (s *ActivitySink) Log(_ context.Context, entry activity.Entry) {
	s.Entries = append(s.Entries, entry)
}
