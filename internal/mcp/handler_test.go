package mcp_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/mcp"
	"github.com/planops/ruleboard/internal/memory"
)

func newHandler(t *testing.T) (*mcp.Handler, *rule.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	actSvc := activity.NewService(memory.NewActivityStore(), logger)
	ruleSvc := rule.NewService(memory.NewRuleStore(), actSvc, nil, logger)
	return mcp.NewHandler(ruleSvc, actSvc), ruleSvc
}

func seed(t *testing.T, svc *rule.Service, names ...string) []*rule.Rule {
	t.Helper()
	out := make([]*rule.Rule, 0, len(names))
	for _, name := range names {
		r, err := svc.Create(context.Background(), rule.CreateRequest{
			Name: name, BusinessArea: "Claims", User: "seed",
		})
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func TestHandler_ListScreens(t *testing.T) {
	h, _ := newHandler(t)

	out, err := h.ListScreens(context.Background(), mcp.ListScreensParams{})
	require.NoError(t, err)

	res, ok := out.(mcp.ListScreensResult)
	require.True(t, ok)
	require.Len(t, res.Screens, 8)
}

func TestHandler_QueryRules(t *testing.T) {
	h, svc := newHandler(t)
	seed(t, svc, "Dental Coverage", "Vision Coverage", "Ambulance")

	out, err := h.QueryRules(context.Background(), mcp.QueryRulesParams{
		TextFilters: map[string]string{"name": "coverage"},
		SortKey:     "name",
		SortDesc:    true,
	})
	require.NoError(t, err)

	res := out.(mcp.QueryRulesResult)
	require.Equal(t, 2, res.TotalRows)
	require.Equal(t, "Vision Coverage", res.Rows[0].Name)
}

func TestHandler_QueryRules_ClampsPage(t *testing.T) {
	h, svc := newHandler(t)
	seed(t, svc, "One", "Two", "Three")

	out, err := h.QueryRules(context.Background(), mcp.QueryRulesParams{
		Page:     50,
		PageSize: 2,
	})
	require.NoError(t, err)

	res := out.(mcp.QueryRulesResult)
	require.Equal(t, 2, res.TotalPages)
	require.Equal(t, 2, res.Page)
	require.Len(t, res.Rows, 1)
}

func TestHandler_PublishAndLock(t *testing.T) {
	h, svc := newHandler(t)
	seeded := seed(t, svc, "Release Me")

	out, err := h.PublishRules(context.Background(), mcp.BulkRuleParams{
		RuleIDs: []string{seeded[0].RuleID}, User: "maria",
	})
	require.NoError(t, err)
	res := out.(mcp.PublishResult)
	require.Equal(t, 1, res.Count)
	require.Equal(t, "1.0", res.Published[0].Version)

	_, err = h.UpdateCell(context.Background(), mcp.UpdateCellParams{
		RuleID: seeded[0].RuleID, Field: "name", Value: "nope",
	})
	require.ErrorIs(t, err, rule.ErrRuleLocked)
	apiErr := mcp.MapError(err)
	require.NotNil(t, apiErr)
	require.Equal(t, "RULE_LOCKED", apiErr.Code)
}

func TestHandler_DeleteRules(t *testing.T) {
	h, svc := newHandler(t)
	seeded := seed(t, svc, "Doomed", "Survivor")

	out, err := h.DeleteRules(context.Background(), mcp.BulkRuleParams{
		RuleIDs: []string{seeded[0].RuleID}, User: "maria",
	})
	require.NoError(t, err)
	require.Equal(t, mcp.DeleteResult{Deleted: 1}, out)

	_, err = h.GetRule(context.Background(), mcp.GetRuleParams{RuleID: seeded[0].RuleID})
	require.ErrorIs(t, err, rule.ErrRuleNotFound)
}

func TestHandler_ExportRulesCSV(t *testing.T) {
	h, svc := newHandler(t)
	seed(t, svc, `He said "hi"`)

	out, err := h.ExportRulesCSV(context.Background(), mcp.ExportRulesParams{})
	require.NoError(t, err)

	res := out.(mcp.ExportResult)
	require.Contains(t, res.Filename, "rule-grid-rules-")
	lines := strings.Split(strings.TrimSpace(res.CSV), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"He said ""hi"""`)
}

func TestHandler_ListActivity(t *testing.T) {
	h, svc := newHandler(t)
	seeded := seed(t, svc, "Audited")

	_, err := h.UpdateCell(context.Background(), mcp.UpdateCellParams{
		RuleID: seeded[0].RuleID, Field: "business_area", Value: "Pharmacy", User: "luis",
	})
	require.NoError(t, err)

	out, err := h.ListActivity(context.Background(), mcp.ListActivityParams{User: "luis"})
	require.NoError(t, err)

	entries := out.([]activity.Entry)
	require.Len(t, entries, 1)
	require.Equal(t, activity.ActionCellEdit, entries[0].Action)
	require.Equal(t, "Claims", entries[0].OldValue)
	require.Equal(t, "Pharmacy", entries[0].NewValue)
}
