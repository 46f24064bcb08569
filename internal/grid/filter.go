package grid

import (
	"fmt"
	"strings"
)

// TriState is a three-valued flag filter.
type TriState string

const (
	FlagAll   TriState = "all"
	FlagTrue  TriState = "true"
	FlagFalse TriState = "false"
)

// FilterState holds the active per-column filters for one view. Columns
// combine with logical AND; an unset filter matches every row.
type FilterState struct {
	text   map[string]string
	values map[string][]string
	flags  map[string]TriState
}

// NewFilterState returns a filter state with no filtering active.
func NewFilterState() *FilterState {
	return &FilterState{
		text:   make(map[string]string),
		values: make(map[string][]string),
		flags:  make(map[string]TriState),
	}
}

// SetText sets a case-insensitive substring filter on a column. An empty
// string clears the filter.
func (f *FilterState) SetText(key, substr string) {
	if substr == "" {
		delete(f.text, key)
		return
	}
	f.text[key] = substr
}

// SetValues sets a multi-select filter on a column. An empty set clears the
// filter (matches all). Matching is exact string equality.
func (f *FilterState) SetValues(key string, values []string) {
	if len(values) == 0 {
		delete(f.values, key)
		return
	}
	f.values[key] = append([]string(nil), values...)
}

// SetFlag sets a tri-state filter on a boolean column.
func (f *FilterState) SetFlag(key string, flag TriState) {
	if flag == FlagAll || flag == "" {
		delete(f.flags, key)
		return
	}
	f.flags[key] = flag
}

// Reset clears all filters. Used when the column schema changes, e.g. when
// the user switches collateral type.
func (f *FilterState) Reset() {
	f.text = make(map[string]string)
	f.values = make(map[string][]string)
	f.flags = make(map[string]TriState)
}

// Active reports whether any filter is set.
func (f *FilterState) Active() bool {
	return len(f.text) > 0 || len(f.values) > 0 || len(f.flags) > 0
}

// Text returns the substring filter for a column, if set.
func (f *FilterState) Text(key string) (string, bool) {
	v, ok := f.text[key]
	return v, ok
}

// Values returns the multi-select filter for a column, if set.
func (f *FilterState) Values(key string) ([]string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Flag returns the tri-state filter for a column; FlagAll when unset.
func (f *FilterState) Flag(key string) TriState {
	if v, ok := f.flags[key]; ok {
		return v
	}
	return FlagAll
}

// Apply returns the rows matching every active filter, in input order.
func Apply[T any](rows []T, schema Schema[T], f *FilterState) []T {
	if f == nil || !f.Active() {
		return append([]T(nil), rows...)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if matches(f, row, schema) {
			out = append(out, row)
		}
	}
	return out
}

func matches[T any](f *FilterState, row T, schema Schema[T]) bool {
	for key, substr := range f.text {
		col, ok := schema.Column(key)
		if !ok {
			continue
		}
		have := strings.ToLower(cellString(col.Value(row)))
		if !strings.Contains(have, strings.ToLower(substr)) {
			return false
		}
	}
	for key, accepted := range f.values {
		col, ok := schema.Column(key)
		if !ok {
			continue
		}
		have := cellString(col.Value(row))
		found := false
		for _, v := range accepted {
			if have == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for key, flag := range f.flags {
		col, ok := schema.Column(key)
		if !ok {
			continue
		}
		if cellBool(col.Value(row)) != (flag == FlagTrue) {
			return false
		}
	}
	return true
}

// cellString coerces a cell value for filtering. Missing values degrade to
// an empty string rather than failing.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// cellBool coerces a cell value for flag filtering; missing or non-boolean
// values are treated as false.
func cellBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
