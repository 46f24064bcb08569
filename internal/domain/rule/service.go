package rule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planops/ruleboard/internal/confirm"
	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/repository"
)

// Service handles rule business logic: creation, inline cell edits, the
// rich-text save path, and the bulk delete/publish/copy actions.
type Service struct {
	rules     Repository
	sink      activity.Sink
	confirmer confirm.Confirmer
	logger    *slog.Logger
}

// NewService creates a new rule service. A nil sink falls back to a no-op
// and a nil confirmer auto-approves.
func NewService(rules Repository, sink activity.Sink, confirmer confirm.Confirmer, logger *slog.Logger) *Service {
	if sink == nil {
		sink = activity.NopSink{}
	}
	if confirmer == nil {
		confirmer = confirm.AutoApprove{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rules: rules, sink: sink, confirmer: confirmer, logger: logger}
}

// CreateRequest describes a rule creation request.
type CreateRequest struct {
	Name           string
	BusinessArea   string
	BenefitType    string
	Template       string
	CollateralType string
	EnglishText    string
	SpanishText    string
	EffectiveDate  string
	User           string
}

// UpdateCellRequest describes an inline single-field edit.
type UpdateCellRequest struct {
	RuleID string
	Field  string
	Value  string
	User   string
}

// RichTextRequest carries the bilingual text returned by the editor dialog.
type RichTextRequest struct {
	RuleID      string
	EnglishText string
	SpanishText string
	User        string
}

// BulkRequest names the rules addressed by a bulk delete or publish.
type BulkRequest struct {
	RuleIDs []string
	User    string
}

// Create creates a new rule with a generated business identifier.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Rule, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	existing, err := s.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	ids := make([]string, 0, len(existing))
	for _, r := range existing {
		ids = append(ids, r.RuleID)
	}

	now := time.Now()
	r := &Rule{
		ID:             uuid.NewString(),
		RuleID:         NextRuleID(ids),
		Name:           req.Name,
		BusinessArea:   req.BusinessArea,
		BenefitType:    req.BenefitType,
		Template:       req.Template,
		CollateralType: req.CollateralType,
		EnglishText:    req.EnglishText,
		SpanishText:    req.SpanishText,
		EnglishStatus:  StatusDraft,
		SpanishStatus:  StatusDraft,
		EffectiveDate:  req.EffectiveDate,
		Version:        "0.1",
		CreatedBy:      req.User,
		CreatedAt:      now,
		LastModified:   now,
	}

	if err := s.rules.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}

	s.sink.Log(ctx, activity.Entry{
		User:   req.User,
		Action: activity.ActionCreate,
		Target: r.Name,
		RuleID: r.RuleID,
	})

	return r, nil
}

// Get returns a rule by business identifier.
func (s *Service) Get(ctx context.Context, ruleID string) (*Rule, error) {
	r, err := s.rules.GetByRuleID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("getting rule: %w", err)
	}
	return r, nil
}

// List returns all rules in store order.
func (s *Service) List(ctx context.Context) ([]Rule, error) {
	return s.rules.List(ctx)
}

// UpdateCell commits an inline cell edit: published rules are locked, the
// field must be inline-editable, and the change stamps LastModified and
// emits an activity event with the old and new values.
func (s *Service) UpdateCell(ctx context.Context, req UpdateCellRequest) (*Rule, error) {
	r, err := s.Get(ctx, req.RuleID)
	if err != nil {
		return nil, err
	}
	if r.Published {
		return nil, ErrRuleLocked
	}

	set, ok := editableFields[req.Field]
	if !ok {
		return nil, ErrUnknownField
	}

	updated := *r
	old := fieldValue(&updated, req.Field)
	set(&updated, req.Value)
	updated.LastModified = time.Now()

	if err := s.rules.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating rule: %w", err)
	}

	s.sink.Log(ctx, activity.Entry{
		User:     req.User,
		Action:   activity.ActionCellEdit,
		Target:   fmt.Sprintf("%s.%s", updated.RuleID, req.Field),
		RuleID:   updated.RuleID,
		OldValue: old,
		NewValue: req.Value,
	})

	return &updated, nil
}

// SaveRichText commits the bilingual text from the rich-text dialog.
func (s *Service) SaveRichText(ctx context.Context, req RichTextRequest) (*Rule, error) {
	r, err := s.Get(ctx, req.RuleID)
	if err != nil {
		return nil, err
	}
	if r.Published {
		return nil, ErrRuleLocked
	}

	updated := *r
	updated.EnglishText = req.EnglishText
	updated.SpanishText = req.SpanishText
	updated.LastModified = time.Now()

	if err := s.rules.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating rule text: %w", err)
	}

	s.sink.Log(ctx, activity.Entry{
		User:    req.User,
		Action:  activity.ActionRichTextEdit,
		Target:  updated.Name,
		RuleID:  updated.RuleID,
		Details: "english/spanish text updated",
	})

	return &updated, nil
}

// Delete removes the named rules after confirmation. The whole selection is
// rejected with no partial effect if any rule in it is published.
func (s *Service) Delete(ctx context.Context, req BulkRequest) (int, error) {
	if len(req.RuleIDs) == 0 {
		return 0, ErrInvalidInput
	}

	targets := make([]*Rule, 0, len(req.RuleIDs))
	for _, id := range req.RuleIDs {
		r, err := s.Get(ctx, id)
		if err != nil {
			return 0, err
		}
		if r.Published {
			return 0, ErrPublishedDelete
		}
		targets = append(targets, r)
	}

	prompt := fmt.Sprintf("Delete %d rule(s)? This cannot be undone.", len(targets))
	ok, err := s.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("confirming delete: %w", err)
	}
	if !ok {
		return 0, ErrDeclined
	}

	for _, r := range targets {
		if err := s.rules.DeleteByRuleID(ctx, r.RuleID); err != nil {
			return 0, fmt.Errorf("deleting rule %s: %w", r.RuleID, err)
		}
		s.sink.Log(ctx, activity.Entry{
			User:   req.User,
			Action: activity.ActionDelete,
			Target: r.Name,
			RuleID: r.RuleID,
		})
	}

	return len(targets), nil
}

// Publish marks the named rules published, bumping each to the next integer
// major version. Already-published rules are skipped silently; if every rule
// in the selection was already published the call reports ErrNothingToPublish.
// The published flag is one-way: nothing in the service clears it.
func (s *Service) Publish(ctx context.Context, req BulkRequest) ([]Rule, error) {
	if len(req.RuleIDs) == 0 {
		return nil, ErrInvalidInput
	}

	published := make([]Rule, 0, len(req.RuleIDs))
	for _, id := range req.RuleIDs {
		r, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if r.Published {
			continue
		}

		updated := *r
		oldVersion := updated.Version
		updated.Published = true
		updated.Version = NextVersion(oldVersion)
		updated.LastModified = time.Now()

		if err := s.rules.Update(ctx, &updated); err != nil {
			return nil, fmt.Errorf("publishing rule %s: %w", updated.RuleID, err)
		}

		s.sink.Log(ctx, activity.Entry{
			User:     req.User,
			Action:   activity.ActionPublish,
			Target:   updated.Name,
			RuleID:   updated.RuleID,
			OldValue: oldVersion,
			NewValue: updated.Version,
		})

		published = append(published, updated)
	}

	if len(published) == 0 {
		return nil, ErrNothingToPublish
	}
	return published, nil
}

// Copy clones a rule under a fresh business identifier. The clone is always
// unpublished regardless of the source and its name gains a "(Copy)" suffix.
func (s *Service) Copy(ctx context.Context, ruleID, user string) (*Rule, error) {
	src, err := s.Get(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	existing, err := s.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	ids := make([]string, 0, len(existing))
	for _, r := range existing {
		ids = append(ids, r.RuleID)
	}

	now := time.Now()
	clone := *src
	clone.ID = uuid.NewString()
	clone.RuleID = NextRuleID(ids)
	clone.Name = src.Name + " (Copy)"
	clone.Published = false
	clone.Version = "0.1"
	clone.CreatedBy = user
	clone.CreatedAt = now
	clone.LastModified = now

	if err := s.rules.Create(ctx, &clone); err != nil {
		return nil, fmt.Errorf("creating copy: %w", err)
	}

	s.sink.Log(ctx, activity.Entry{
		User:     user,
		Action:   activity.ActionCopy,
		Target:   clone.Name,
		RuleID:   clone.RuleID,
		Details:  fmt.Sprintf("copied from %s", src.RuleID),
		OldValue: src.RuleID,
		NewValue: clone.RuleID,
	})

	return &clone, nil
}
