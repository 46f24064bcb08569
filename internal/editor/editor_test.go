package editor_test

import (
	"strings"
	"testing"

	"github.com/planops/ruleboard/internal/editor"
	"github.com/planops/ruleboard/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestCell_EditSaveCommits(t *testing.T) {
	c := editor.NewCell("old", grid.KindText, false)
	require.Equal(t, editor.StateViewing, c.State())

	require.NoError(t, c.Begin())
	require.Equal(t, editor.StateEditing, c.State())

	require.NoError(t, c.SetDraft("new"))
	got, err := c.Save()
	require.NoError(t, err)
	require.Equal(t, "new", got)
	require.Equal(t, editor.StateViewing, c.State())
	require.Equal(t, "new", c.Value())
}

func TestCell_CancelDiscardsDraft(t *testing.T) {
	c := editor.NewCell("old", grid.KindText, false)
	require.NoError(t, c.Begin())
	require.NoError(t, c.SetDraft("new"))

	c.Cancel()
	require.Equal(t, editor.StateViewing, c.State())
	require.Equal(t, "old", c.Value())
}

func TestCell_LockedNeverLeavesViewing(t *testing.T) {
	c := editor.NewCell("v", grid.KindText, true)
	require.ErrorIs(t, c.Begin(), editor.ErrLocked)
	require.Equal(t, editor.StateViewing, c.State())
}

func TestCell_RichTextAndDateBypassInline(t *testing.T) {
	require.ErrorIs(t, editor.NewCell("<p>x</p>", grid.KindRichText, false).Begin(), editor.ErrNotInlineEditable)
	require.ErrorIs(t, editor.NewCell("01/01/2026", grid.KindDate, false).Begin(), editor.ErrNotInlineEditable)
}

func TestCell_IdentifierNotEditable(t *testing.T) {
	require.ErrorIs(t, editor.NewCell("R0001", grid.KindIdentifier, false).Begin(), editor.ErrLocked)
}

func TestCell_SaveOutsideEditing(t *testing.T) {
	c := editor.NewCell("v", grid.KindText, false)
	_, err := c.Save()
	require.ErrorIs(t, err, editor.ErrNotEditing)
}

func TestStripHTML(t *testing.T) {
	require.Equal(t, "Hello world", editor.StripHTML("<p>Hello <b>world</b></p>"))
	require.Equal(t, `He said "hi"`, editor.StripHTML("He said &quot;hi&quot;"))
	require.Equal(t, "plain", editor.StripHTML("plain"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", editor.Truncate("abc", 5))
	require.Equal(t, "abcde...", editor.Truncate("abcdefgh", 5))
}

func TestDisplayText_RichTextStrippedAndTruncated(t *testing.T) {
	long := "<p>" + strings.Repeat("lorem ", 30) + "</p>"

	got := editor.DisplayText(long, grid.KindRichText)
	require.LessOrEqual(t, len([]rune(got)), 103) // 100 + ellipsis
	require.NotContains(t, got, "<p>")
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "01/15/2026", editor.FormatDate("2026-01-15"))
	require.Equal(t, "01/15/2026", editor.FormatDate("01/15/2026"))
	require.Equal(t, "not a date", editor.FormatDate("not a date"))
}

func TestParseDate_FirstParseWins(t *testing.T) {
	got, ok := editor.ParseDate("2026-01-15T00:00:00Z")
	require.True(t, ok)
	require.Equal(t, 2026, got.Year())

	_, ok = editor.ParseDate("")
	require.False(t, ok)
}
