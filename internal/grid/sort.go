package grid

import (
	"sort"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState is the single active (column, direction) pair for a view. The
// zero value means unsorted.
type SortState struct {
	Key       string    `json:"key,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Toggle activates sorting on key, or flips direction if key is already the
// active sort column.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Key = key
	s.Direction = Ascending
}

// Active reports whether a sort column is set.
func (s SortState) Active() bool {
	return s.Key != ""
}

// Sort returns rows ordered by the state's column. Strings compare
// case-insensitively, booleans order false before true, numbers compare
// numerically, and mixed types fall back to stringified comparison. Nil
// values sort last ascending and first descending. Input order is preserved
// for equal keys.
func Sort[T any](rows []T, schema Schema[T], s SortState) []T {
	out := append([]T(nil), rows...)
	if !s.Active() {
		return out
	}
	col, ok := schema.Column(s.Key)
	if !ok {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compareCells(col.Value(out[i]), col.Value(out[j]))
		if s.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareCells(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1 // nil last ascending
	}
	if b == nil {
		return -1
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			if ab == bb {
				return 0
			}
			if !ab {
				return -1
			}
			return 1
		}
	}

	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(
		strings.ToLower(cellString(a)),
		strings.ToLower(cellString(b)),
	)
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return 0, false
	}
}
