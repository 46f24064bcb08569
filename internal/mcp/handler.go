package mcp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/export"
	"github.com/planops/ruleboard/internal/grid"
	"github.com/planops/ruleboard/internal/screens"
)

// Handler implements the MCP tools over the domain services.
type Handler struct {
	rules    RuleService
	activity ActivityService
}

// NewHandler creates a new MCP handler.
func NewHandler(rules RuleService, activitySvc ActivityService) *Handler {
	return &Handler{rules: rules, activity: activitySvc}
}

// ListScreens returns the screen registry in navigation order.
func (h *Handler) ListScreens(_ context.Context, _ ListScreensParams) (any, error) {
	return ListScreensResult{Screens: screens.Registry()}, nil
}

// QueryRules runs one filtered, sorted, paged query over the rule grid.
func (h *Handler) QueryRules(ctx context.Context, params QueryRulesParams) (any, error) {
	rows, err := h.rules.List(ctx)
	if err != nil {
		return nil, err
	}
	res := queryRules(rows, params)
	return QueryRulesResult{
		Rows:       res.Rows,
		TotalRows:  res.TotalRows,
		TotalPages: res.TotalPages,
		Page:       res.Page,
		PageSize:   res.PageSize,
	}, nil
}

func queryRules(rows []rule.Rule, params QueryRulesParams) grid.Result[rule.Rule] {
	size := params.PageSize
	if size == 0 {
		size = 10
	}
	view := grid.NewView(screens.RuleGridSchema(), size)
	for key, substr := range params.TextFilters {
		view.SetTextFilter(key, substr)
	}
	for key, values := range params.ValueFilters {
		view.SetValueFilter(key, values)
	}
	for key, flag := range params.FlagFilters {
		view.SetFlagFilter(key, grid.TriState(flag))
	}
	if params.SortKey != "" {
		view.Sort = grid.SortState{Key: params.SortKey, Direction: grid.Ascending}
		if params.SortDesc {
			view.Sort.Direction = grid.Descending
		}
	}
	if params.Page > 0 {
		view.SetPage(params.Page)
	}
	return view.Compute(rows)
}

// GetRule returns one rule by identifier.
func (h *Handler) GetRule(ctx context.Context, params GetRuleParams) (any, error) {
	return h.rules.Get(ctx, params.RuleID)
}

// CreateRule creates a rule with a generated identifier.
func (h *Handler) CreateRule(ctx context.Context, params CreateRuleParams) (any, error) {
	return h.rules.Create(ctx, rule.CreateRequest{
		Name:           params.Name,
		BusinessArea:   params.BusinessArea,
		BenefitType:    params.BenefitType,
		Template:       params.Template,
		CollateralType: params.CollateralType,
		EnglishText:    params.EnglishText,
		SpanishText:    params.SpanishText,
		EffectiveDate:  params.EffectiveDate,
		User:           params.User,
	})
}

// UpdateCell commits an inline single-field edit.
func (h *Handler) UpdateCell(ctx context.Context, params UpdateCellParams) (any, error) {
	return h.rules.UpdateCell(ctx, rule.UpdateCellRequest{
		RuleID: params.RuleID,
		Field:  params.Field,
		Value:  params.Value,
		User:   params.User,
	})
}

// SaveRichText commits bilingual rich-text content.
func (h *Handler) SaveRichText(ctx context.Context, params SaveRichTextParams) (any, error) {
	return h.rules.SaveRichText(ctx, rule.RichTextRequest{
		RuleID:      params.RuleID,
		EnglishText: params.EnglishText,
		SpanishText: params.SpanishText,
		User:        params.User,
	})
}

// CopyRule clones a rule into a new unpublished draft.
func (h *Handler) CopyRule(ctx context.Context, params CopyRuleParams) (any, error) {
	return h.rules.Copy(ctx, params.RuleID, params.User)
}

// DeleteRules deletes a selection of unpublished rules.
func (h *Handler) DeleteRules(ctx context.Context, params BulkRuleParams) (any, error) {
	deleted, err := h.rules.Delete(ctx, rule.BulkRequest{RuleIDs: params.RuleIDs, User: params.User})
	if err != nil {
		return nil, err
	}
	return DeleteResult{Deleted: deleted}, nil
}

// PublishRules releases a selection of rules.
func (h *Handler) PublishRules(ctx context.Context, params BulkRuleParams) (any, error) {
	published, err := h.rules.Publish(ctx, rule.BulkRequest{RuleIDs: params.RuleIDs, User: params.User})
	if err != nil {
		return nil, err
	}
	return PublishResult{Published: published, Count: len(published)}, nil
}

// ListActivity lists activity entries newest first.
func (h *Handler) ListActivity(ctx context.Context, params ListActivityParams) (any, error) {
	opts := activity.ListOptions{
		RuleID: params.RuleID,
		User:   params.User,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Action != "" {
		action := activity.Action(params.Action)
		opts.Action = &action
	}
	return h.activity.Recent(ctx, opts)
}

// ExportRulesCSV renders the filtered, sorted rule grid as CSV text.
// Paging is ignored: the export covers every matching rule.
func (h *Handler) ExportRulesCSV(ctx context.Context, params ExportRulesParams) (any, error) {
	rows, err := h.rules.List(ctx)
	if err != nil {
		return nil, err
	}

	q := params.QueryRulesParams
	q.PageSize = -1
	res := queryRules(rows, q)

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, screens.RuleGridSchema(), res.Rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return ExportResult{
		Filename: export.Filename(string(screens.RuleGrid), time.Now()),
		CSV:      buf.String(),
	}, nil
}
