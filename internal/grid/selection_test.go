package grid_test

import (
	"testing"

	"github.com/planops/ruleboard/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestSelection_ToggleAndClear(t *testing.T) {
	s := grid.NewSelection()

	s.Toggle("a")
	s.Toggle("b")
	require.Equal(t, 2, s.Count())
	require.True(t, s.Has("a"))

	s.Toggle("a")
	require.False(t, s.Has("a"))

	s.Clear()
	require.Equal(t, 0, s.Count())
}

func TestSelection_PageOperationsLeaveOffPageIDs(t *testing.T) {
	s := grid.NewSelection()
	s.Select("off-page")

	page := []string{"a", "b", "c"}
	s.SelectPage(page)
	require.Equal(t, 4, s.Count())

	s.DeselectPage(page)
	require.Equal(t, 1, s.Count())
	require.True(t, s.Has("off-page"))
}

func TestSelection_Replace(t *testing.T) {
	s := grid.NewSelection()
	s.Select("a")
	s.Select("b")

	s.Replace("clone")
	require.Equal(t, []string{"clone"}, s.IDs())
}
