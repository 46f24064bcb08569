// Package export writes screen contents as CSV downloads.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/planops/ruleboard/internal/editor"
	"github.com/planops/ruleboard/internal/grid"
)

// WriteCSV writes rows using the screen's column order and headers. Every
// cell is double-quote wrapped with internal quotes doubled; rich-text
// values are HTML-stripped and booleans render as Yes/No. The exact quoting
// is part of the export contract, which is why this doesn't go through
// encoding/csv (that package only quotes when required).
func WriteCSV[T any](w io.Writer, schema grid.Schema[T], rows []T) error {
	headers := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		headers = append(headers, escape(col.Title))
	}
	if _, err := io.WriteString(w, strings.Join(headers, ",")+"\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		cells := make([]string, 0, len(schema.Columns))
		for _, col := range schema.Columns {
			cells = append(cells, escape(cellText(col, row)))
		}
		if _, err := io.WriteString(w, strings.Join(cells, ",")+"\n"); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

func cellText[T any](col grid.Column[T], row T) string {
	v := col.Value(row)
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case string:
		if col.Kind == grid.KindRichText {
			return editor.StripHTML(x)
		}
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func escape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Filename builds the download name for a screen's export, e.g.
// rule-grid-rules-2026-09-01.csv.
func Filename(screen string, now time.Time) string {
	return fmt.Sprintf("%s-rules-%s.csv", kebab(screen), now.Format("2006-01-02"))
}

func kebab(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), "-")
}
