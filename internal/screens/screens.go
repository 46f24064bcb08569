// Package screens declares the console's screens: which records each one
// shows and in which columns. Every screen is the same filter/sort/page
// grid instantiated with a different schema, so a screen definition is just
// data.
package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/planops/ruleboard/internal/grid"
)

// ID names one console screen.
type ID string

const (
	RuleGrid    ID = "rule-grid"
	Queued      ID = "queued-collateral"
	Publish     ID = "publish"
	Collaborate ID = "collaborate"
	Logs        ID = "logs"
	Users       ID = "user-management"
	Generate    ID = "generate"
	Portfolio   ID = "portfolio"
)

// Info is the registry entry for one screen.
type Info struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// Registry lists all screens in navigation order.
func Registry() []Info {
	return []Info{
		{RuleGrid, "Rule Grid"},
		{Queued, "Queued Collateral"},
		{Publish, "Publish"},
		{Collaborate, "Collaborate"},
		{Generate, "Generate"},
		{Portfolio, "Portfolio"},
		{Logs, "Logs"},
		{Users, "User Management"},
	}
}

// Title returns a screen's display title, or the raw id if unknown.
func Title(id ID) string {
	for _, info := range Registry() {
		if info.ID == id {
			return info.Title
		}
	}
	return string(id)
}

// Known reports whether id names a registered screen.
func Known(id ID) bool {
	for _, info := range Registry() {
		if info.ID == id {
			return true
		}
	}
	return false
}

// subset returns the schema restricted to the named columns, in the given
// order.
func subset[T any](s grid.Schema[T], keys ...string) grid.Schema[T] {
	cols := make([]grid.Column[T], 0, len(keys))
	for _, key := range keys {
		if col, ok := s.Column(key); ok {
			cols = append(cols, col)
		}
	}
	return grid.Schema[T]{Columns: cols, ID: s.ID}
}

// PrefStore is the preference collaborator used for column visibility.
type PrefStore interface {
	Get(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key, value string) error
}

func visibleColumnsKey(id ID) string {
	return fmt.Sprintf("%s-visible-columns", id)
}

// VisibleColumns returns the column keys the user keeps visible on a
// screen, falling back to defaults when no preference is stored.
func VisibleColumns(ctx context.Context, prefs PrefStore, id ID, defaults []string) ([]string, error) {
	stored, err := prefs.Get(ctx, visibleColumnsKey(id), "")
	if err != nil {
		return nil, err
	}
	if stored == "" {
		return defaults, nil
	}
	return strings.Split(stored, ","), nil
}

// SetVisibleColumns persists the visible column keys for a screen.
func SetVisibleColumns(ctx context.Context, prefs PrefStore, id ID, keys []string) error {
	return prefs.Set(ctx, visibleColumnsKey(id), strings.Join(keys, ","))
}
