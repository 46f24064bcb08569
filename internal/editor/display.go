package editor

import (
	"html"
	"regexp"
	"strings"

	"github.com/planops/ruleboard/internal/grid"
)

// richTextPreviewLen is the truncation applied to rich-text cells in the
// Viewing state.
const richTextPreviewLen = 100

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup tags and unescapes entities, leaving plain text.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(s, "")))
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// DisplayText formats a cell value for the Viewing state: rich text is
// stripped and truncated, dates are normalized to MM/dd/yyyy, everything
// else passes through raw.
func DisplayText(value string, kind grid.ColumnKind) string {
	switch kind {
	case grid.KindRichText:
		return Truncate(StripHTML(value), richTextPreviewLen)
	case grid.KindDate:
		return FormatDate(value)
	default:
		return value
	}
}
