// Package testserver wires a fully seeded console over httptest for
// integration tests.
package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/domain/user"
	"github.com/planops/ruleboard/internal/memory"
	"github.com/planops/ruleboard/internal/seed"
	"github.com/planops/ruleboard/internal/sqlite"
	"github.com/planops/ruleboard/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Rules    *rule.Service
	Users    *user.Service
	Activity *activity.Service
}

// New starts a server seeded with the embedded sample data.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	ruleStore := memory.NewRuleStore()
	userStore := memory.NewCollection(func(u user.User) string { return u.ID })
	documentStore := memory.NewCollection(func(d collateral.Document) string { return d.ID })
	queuedStore := memory.NewCollection(func(j collateral.QueuedJob) string { return j.ID })
	portfolioStore := memory.NewCollection(func(p collateral.PortfolioItem) string { return p.ID })

	data, err := seed.Load("")
	require.NoError(t, err)
	seed.Apply(data, seed.Stores{
		Rules:     ruleStore,
		Users:     userStore,
		Documents: documentStore,
		Queued:    queuedStore,
		Portfolio: portfolioStore,
	})

	activitySvc := activity.NewService(memory.NewActivityStore(), nil)
	ruleSvc := rule.NewService(ruleStore, activitySvc, nil, nil)
	userSvc := user.NewService(userStore)

	server := httptest.NewServer(transport.NewServer(ruleSvc, activitySvc, userSvc, transport.Stores{
		Documents: documentStore,
		Queued:    queuedStore,
		Portfolio: portfolioStore,
	}, sqlite.NewPrefStore(db), nil))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Rules:    ruleSvc,
		Users:    userSvc,
		Activity: activitySvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
