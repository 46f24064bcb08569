package activity

import "context"

// Sink receives activity events. It is injected into every component that
// logs user actions; callers never look it up ambiently. Log must not fail
// the calling operation, so implementations swallow their own errors.
type Sink interface {
	Log(ctx context.Context, entry Entry)
}

// Repository provides persistence operations for activity entries.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
}

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	RuleID string
	User   string
	Action *Action
	Limit  int
	Offset int
}

// NopSink discards all events. It is the default when no sink is wired,
// mirroring the tolerate-absence contract of the original log hook.
type NopSink struct{}

func (NopSink) Log(context.Context, Entry) {}
