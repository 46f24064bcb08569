package grid_test

import (
	"fmt"

	"github.com/planops/ruleboard/internal/grid"
)

type row struct {
	ID        string
	Name      string
	Area      string
	Published bool
	Weight    int
}

func testSchema() grid.Schema[row] {
	return grid.Schema[row]{
		ID: func(r row) string { return r.ID },
		Columns: []grid.Column[row]{
			{Key: "id", Title: "ID", Kind: grid.KindIdentifier, Value: func(r row) any { return r.ID }},
			{Key: "name", Title: "Name", Kind: grid.KindText, Editable: true, Value: func(r row) any { return r.Name }},
			{Key: "area", Title: "Business Area", Kind: grid.KindCategory, Value: func(r row) any { return r.Area }},
			{Key: "published", Title: "Published", Kind: grid.KindFlag, Value: func(r row) any { return r.Published }},
			{Key: "weight", Title: "Weight", Kind: grid.KindComputed, Value: func(r row) any { return r.Weight }},
		},
	}
}

func makeRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		area := "Pharmacy"
		if i%2 == 0 {
			area = "Dental"
		}
		rows = append(rows, row{
			ID:        fmt.Sprintf("r%03d", i),
			Name:      fmt.Sprintf("Rule %03d", i),
			Area:      area,
			Published: i%3 == 0,
			Weight:    i,
		})
	}
	return rows
}
