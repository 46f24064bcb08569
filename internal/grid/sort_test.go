package grid_test

import (
	"testing"

	"github.com/planops/ruleboard/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestSort_StringsCaseInsensitive(t *testing.T) {
	schema := testSchema()
	rows := []row{
		{ID: "a", Name: "banana"},
		{ID: "b", Name: "Apple"},
		{ID: "c", Name: "cherry"},
	}

	got := grid.Sort(rows, schema, grid.SortState{Key: "name", Direction: grid.Ascending})
	require.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestSort_BooleansFalseFirst(t *testing.T) {
	schema := testSchema()
	rows := []row{
		{ID: "a", Published: true},
		{ID: "b", Published: false},
		{ID: "c", Published: true},
	}

	got := grid.Sort(rows, schema, grid.SortState{Key: "published", Direction: grid.Ascending})
	require.Equal(t, []string{"b", "a", "c"}, ids(got))

	got = grid.Sort(rows, schema, grid.SortState{Key: "published", Direction: grid.Descending})
	require.Equal(t, []string{"a", "c", "b"}, ids(got))
}

func TestSort_Numeric(t *testing.T) {
	schema := testSchema()
	rows := []row{
		{ID: "a", Weight: 10},
		{ID: "b", Weight: 2},
		{ID: "c", Weight: 30},
	}

	got := grid.Sort(rows, schema, grid.SortState{Key: "weight", Direction: grid.Ascending})
	require.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestSort_ToggleReversesUniqueValues(t *testing.T) {
	schema := testSchema()
	rows := makeRows(9)

	var state grid.SortState
	state.Toggle("id")
	asc := grid.Sort(rows, schema, state)

	state.Toggle("id")
	require.Equal(t, grid.Descending, state.Direction)
	desc := grid.Sort(rows, schema, state)

	for i := range asc {
		require.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSort_ToggleNewKeyStartsAscending(t *testing.T) {
	state := grid.SortState{Key: "name", Direction: grid.Descending}
	state.Toggle("area")
	require.Equal(t, "area", state.Key)
	require.Equal(t, grid.Ascending, state.Direction)
}

func TestSort_InactiveStatePreservesOrder(t *testing.T) {
	schema := testSchema()
	rows := makeRows(5)
	got := grid.Sort(rows, schema, grid.SortState{})
	require.Equal(t, ids(rows), ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	schema := testSchema()
	rows := []row{{ID: "b"}, {ID: "a"}}
	_ = grid.Sort(rows, schema, grid.SortState{Key: "id", Direction: grid.Ascending})
	require.Equal(t, "b", rows[0].ID)
}

func ids(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
