package rule

import "context"

// Repository provides persistence for rules. Deletion is by business
// identifier, matching how the screens address rules in bulk actions.
type Repository interface {
	Create(ctx context.Context, r *Rule) error
	Get(ctx context.Context, id string) (*Rule, error)
	GetByRuleID(ctx context.Context, ruleID string) (*Rule, error)
	Update(ctx context.Context, r *Rule) error
	DeleteByRuleID(ctx context.Context, ruleID string) error
	List(ctx context.Context) ([]Rule, error)
}
