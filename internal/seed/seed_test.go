package seed_test

import (
	"context"
	"testing"

	"github.com/planops/ruleboard/internal/memory"
	"github.com/planops/ruleboard/internal/seed"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedSampleData(t *testing.T) {
	data, err := seed.Load("")
	require.NoError(t, err)

	require.NotEmpty(t, data.Rules)
	require.NotEmpty(t, data.Users)
	require.NotEmpty(t, data.Documents)

	// Every rule gets timestamps and carries a conforming business id.
	for _, r := range data.Rules {
		require.Regexp(t, `^R\d{4}$`, r.RuleID)
		require.False(t, r.CreatedAt.IsZero())
		require.False(t, r.LastModified.IsZero())
	}
}

func TestLoad_RuleIDsUnique(t *testing.T) {
	data, err := seed.Load("")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, r := range data.Rules {
		require.False(t, seen[r.RuleID], "duplicate rule id %s", r.RuleID)
		seen[r.RuleID] = true
	}
}

func TestApply_FillsStores(t *testing.T) {
	data, err := seed.Load("")
	require.NoError(t, err)

	rules := memory.NewRuleStore()
	seed.Apply(data, seed.Stores{Rules: rules})

	got, err := rules.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(data.Rules))
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := seed.Load("/no/such/file.yaml")
	require.Error(t, err)
}
