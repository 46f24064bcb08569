package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/planops/ruleboard/internal/config"
	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/domain/user"
	"github.com/planops/ruleboard/internal/mcp"
	"github.com/planops/ruleboard/internal/memory"
	"github.com/planops/ruleboard/internal/seed"
	"github.com/planops/ruleboard/internal/sqlite"
	"github.com/planops/ruleboard/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.Prefs.Path); err != nil {
		logger.Error("failed to prepare preference db path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.Prefs.Path)
	if err != nil {
		logger.Error("failed to open preference db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	prefs := sqlite.NewPrefStore(db)

	ruleStore := memory.NewRuleStore()
	userStore := memory.NewCollection(func(u user.User) string { return u.ID })
	documentStore := memory.NewCollection(func(d collateral.Document) string { return d.ID })
	queuedStore := memory.NewCollection(func(j collateral.QueuedJob) string { return j.ID })
	portfolioStore := memory.NewCollection(func(p collateral.PortfolioItem) string { return p.ID })

	data, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		logger.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}
	seed.Apply(data, seed.Stores{
		Rules:     ruleStore,
		Users:     userStore,
		Documents: documentStore,
		Queued:    queuedStore,
		Portfolio: portfolioStore,
	})
	logger.Info("seeded stores",
		"rules", len(data.Rules),
		"users", len(data.Users),
		"documents", len(data.Documents))

	activitySvc := activity.NewService(memory.NewActivityStore(), logger)
	ruleSvc := rule.NewService(ruleStore, activitySvc, nil, logger)
	userSvc := user.NewService(userStore)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Rules:    ruleSvc,
			Activity: activitySvc,
		},
		Logger: logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
		return
	}

	apiRouter := transport.NewServer(ruleSvc, activitySvc, userSvc, transport.Stores{
		Documents: documentStore,
		Queued:    queuedStore,
		Portfolio: portfolioStore,
	}, prefs, logger)

	runHTTPMode(logger, apiRouter, mcpServer, cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, api http.Handler, mcpServer *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.Handle("/", api)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
