package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/planops/ruleboard/internal/export"
	"github.com/planops/ruleboard/internal/grid"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name      string
	Body      string
	Published bool
}

func schema() grid.Schema[row] {
	return grid.Schema[row]{
		ID: func(r row) string { return r.Name },
		Columns: []grid.Column[row]{
			{Key: "name", Title: "Name", Kind: grid.KindText, Value: func(r row) any { return r.Name }},
			{Key: "body", Title: "Description", Kind: grid.KindRichText, Value: func(r row) any { return r.Body }},
			{Key: "published", Title: "Published", Kind: grid.KindFlag, Value: func(r row) any { return r.Published }},
		},
	}
}

func TestWriteCSV_EscapesQuotes(t *testing.T) {
	var buf strings.Builder
	rows := []row{{Name: `He said "hi"`, Body: "<p>ok</p>", Published: true}}

	require.NoError(t, export.WriteCSV(&buf, schema(), rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, `"Name","Description","Published"`, lines[0])
	require.Equal(t, `"He said ""hi""","ok","Yes"`, lines[1])
}

func TestWriteCSV_BooleansAsYesNo(t *testing.T) {
	var buf strings.Builder
	rows := []row{{Name: "a"}, {Name: "b", Published: true}}

	require.NoError(t, export.WriteCSV(&buf, schema(), rows))
	require.Contains(t, buf.String(), `"a","","No"`)
	require.Contains(t, buf.String(), `"b","","Yes"`)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "rule-grid-rules-2026-09-01.csv", export.Filename("Rule Grid", now))
	require.Equal(t, "queued-collateral-rules-2026-09-01.csv", export.Filename("queued collateral", now))
}
