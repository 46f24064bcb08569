package functional_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/mcp"
	"github.com/planops/ruleboard/internal/memory"
	"github.com/planops/ruleboard/internal/seed"
)

// newSession connects an MCP client to a seeded server over in-memory
// transports.
func newSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	ruleStore := memory.NewRuleStore()
	data, err := seed.Load("")
	require.NoError(t, err)
	seed.Apply(data, seed.Stores{Rules: ruleStore})

	activitySvc := activity.NewService(memory.NewActivityStore(), nil)
	ruleSvc := rule.NewService(ruleStore, activitySvc, nil, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Rules: ruleSvc, Activity: activitySvc},
	})

	ctx := context.Background()
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args any) json.RawMessage {
	t.Helper()

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s returned an error", name)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return json.RawMessage(text.Text)
}

func TestFunctional_ToolCatalog(t *testing.T) {
	session := newSession(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make(map[string]bool, len(res.Tools))
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"list_screens", "query_rules", "get_rule", "create_rule",
		"update_rule_cell", "save_rule_text", "copy_rule",
		"delete_rules", "publish_rules", "list_activity", "export_rules_csv",
	} {
		require.True(t, names[want], "missing tool %s", want)
	}
}

func TestFunctional_QueryRules(t *testing.T) {
	session := newSession(t)

	raw := callTool(t, session, "query_rules", map[string]any{
		"value_filters": map[string][]string{"business_area": {"Pharmacy"}},
		"sort_key":      "rule_id",
	})

	var res struct {
		Rows      []rule.Rule `json:"rows"`
		TotalRows int         `json:"total_rows"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Equal(t, 2, res.TotalRows)
	require.Equal(t, "R0001", res.Rows[0].RuleID)
}

func TestFunctional_PublishFlow(t *testing.T) {
	session := newSession(t)

	raw := callTool(t, session, "publish_rules", map[string]any{
		"rule_ids": []string{"R0001"},
		"user":     "pnatarajan",
	})
	var pub struct {
		Published []rule.Rule `json:"published"`
		Count     int         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(raw, &pub))
	require.Equal(t, 1, pub.Count)
	require.Equal(t, "3.0", pub.Published[0].Version)

	// The published rule is now locked.
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "update_rule_cell",
		Arguments: map[string]any{
			"rule_id": "R0001",
			"field":   "name",
			"value":   "nope",
		},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestFunctional_ExportCSV(t *testing.T) {
	session := newSession(t)

	raw := callTool(t, session, "export_rules_csv", map[string]any{
		"text_filters": map[string]string{"name": "deductible"},
	})
	var res struct {
		Filename string `json:"filename"`
		CSV      string `json:"csv"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Contains(t, res.Filename, "rule-grid-rules-")
	require.Contains(t, res.CSV, `"Annual Deductible Notice"`)
}
