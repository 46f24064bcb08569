package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// addTool registers one tool, mapping domain errors to MCP error codes.
func addTool[In any](server *sdkmcp.Server, name, description string, fn func(context.Context, In) (any, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
			out, err := fn(ctx, in)
			if err != nil {
				if apiErr := MapError(err); apiErr != nil {
					return nil, nil, apiErr
				}
				return nil, nil, err
			}
			return nil, out, nil
		})
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	addTool(server, "list_screens",
		"List the console screens in navigation order", h.ListScreens)
	addTool(server, "query_rules",
		"Query the rule grid with filters, sorting and paging", h.QueryRules)
	addTool(server, "get_rule",
		"Get one rule by its R#### identifier", h.GetRule)
	addTool(server, "create_rule",
		"Create a new rule; the R#### identifier is generated", h.CreateRule)
	addTool(server, "update_rule_cell",
		"Edit one inline-editable cell of an unpublished rule", h.UpdateCell)
	addTool(server, "save_rule_text",
		"Save the English and Spanish rich-text content of a rule", h.SaveRichText)
	addTool(server, "copy_rule",
		"Copy a rule into a new unpublished draft with a fresh identifier", h.CopyRule)
	addTool(server, "delete_rules",
		"Delete a selection of unpublished rules; rejected whole if any is published", h.DeleteRules)
	addTool(server, "publish_rules",
		"Publish a selection of rules, bumping each to the next whole version", h.PublishRules)
	addTool(server, "list_activity",
		"List activity log entries, newest first", h.ListActivity)
	addTool(server, "export_rules_csv",
		"Export the filtered, sorted rule grid as CSV text", h.ExportRulesCSV)
}
