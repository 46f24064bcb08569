package screens_test

import (
	"context"
	"testing"

	"github.com/planops/ruleboard/internal/screens"
	"github.com/stretchr/testify/require"
)

type fakePrefs struct {
	values map[string]string
}

func (f *fakePrefs) Get(_ context.Context, key, def string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (f *fakePrefs) Set(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

func TestRegistry_AllScreensKnown(t *testing.T) {
	reg := screens.Registry()
	require.Len(t, reg, 8)
	for _, info := range reg {
		require.True(t, screens.Known(info.ID))
		require.NotEmpty(t, info.Title)
	}
	require.False(t, screens.Known(screens.ID("bogus")))
}

func TestRuleScreens_AreSubsetsOfRuleSchema(t *testing.T) {
	full := screens.RuleSchema()
	for _, sub := range []struct {
		name string
		keys []string
	}{
		{"publish", screens.PublishSchema().Keys()},
		{"collaborate", screens.CollaborateSchema().Keys()},
	} {
		for _, key := range sub.keys {
			_, ok := full.Column(key)
			require.True(t, ok, "%s column %s not in rule schema", sub.name, key)
		}
	}
}

func TestCollaborateSchema_FocusesOnBilingualWork(t *testing.T) {
	schema := screens.CollaborateSchema()
	_, ok := schema.Column("spanish_status")
	require.True(t, ok)
	_, ok = schema.Column("published")
	require.False(t, ok)
}

func TestVisibleColumns_DefaultsThenPersisted(t *testing.T) {
	ctx := context.Background()
	prefs := &fakePrefs{}
	defaults := []string{"rule_id", "name"}

	got, err := screens.VisibleColumns(ctx, prefs, screens.Queued, defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, got)

	require.NoError(t, screens.SetVisibleColumns(ctx, prefs, screens.Queued, []string{"job_id", "status"}))
	got, err = screens.VisibleColumns(ctx, prefs, screens.Queued, defaults)
	require.NoError(t, err)
	require.Equal(t, []string{"job_id", "status"}, got)
}
