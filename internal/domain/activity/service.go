package activity

import (
	"context"
	"log/slog"
	"time"
)

// Service stores activity entries and serves the Logs screen. It implements
// Sink so it can be injected wherever events are emitted.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Log records an entry, stamping the current time if missing. Failures are
// logged and swallowed: activity logging never aborts the user's action.
func (s *Service) Log(ctx context.Context, entry Entry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Append(ctx, &entry); err != nil {
		s.logger.Warn("dropping activity entry", "action", entry.Action, "error", err)
	}
}

// Recent lists activity entries, newest first, with filtering.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Entry, error) {
	return s.repo.List(ctx, opts)
}
