// Package mcp exposes the console's rule workflow as MCP tools, so agent
// clients can query, edit and publish rules over stdio or HTTP.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
)

// RuleService defines rule operations needed by MCP.
type RuleService interface {
	Create(ctx context.Context, req rule.CreateRequest) (*rule.Rule, error)
	Get(ctx context.Context, ruleID string) (*rule.Rule, error)
	List(ctx context.Context) ([]rule.Rule, error)
	UpdateCell(ctx context.Context, req rule.UpdateCellRequest) (*rule.Rule, error)
	SaveRichText(ctx context.Context, req rule.RichTextRequest) (*rule.Rule, error)
	Delete(ctx context.Context, req rule.BulkRequest) (int, error)
	Publish(ctx context.Context, req rule.BulkRequest) ([]rule.Rule, error)
	Copy(ctx context.Context, ruleID, user string) (*rule.Rule, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Rules    RuleService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools registered.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "ruleboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerTools(server, NewHandler(cfg.Services.Rules, cfg.Services.Activity))

	return server
}
