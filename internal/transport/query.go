package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/export"
	"github.com/planops/ruleboard/internal/grid"
	"github.com/planops/ruleboard/internal/screens"
)

const defaultPageSize = 10

// queryRequest is the full view state a client sends with each render. The
// server is stateless between queries; clamped paging comes back in the
// result so the client can correct itself.
type queryRequest struct {
	Filters    filterRequest   `json:"filters"`
	Sort       grid.SortState  `json:"sort"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Collateral collateral.Type `json:"collateral,omitempty"`
	User       string          `json:"user,omitempty"`
}

type filterRequest struct {
	Text   map[string]string        `json:"text,omitempty"`
	Values map[string][]string      `json:"values,omitempty"`
	Flags  map[string]grid.TriState `json:"flags,omitempty"`
}

// runQuery computes one page of a screen from the posted view state.
func runQuery[T any](schema grid.Schema[T], rows []T, req queryRequest) grid.Result[T] {
	size := req.PageSize
	if size == 0 {
		size = defaultPageSize
	}
	view := grid.NewView(schema, size)
	for key, substr := range req.Filters.Text {
		view.SetTextFilter(key, substr)
	}
	for key, values := range req.Filters.Values {
		view.SetValueFilter(key, values)
	}
	for key, flag := range req.Filters.Flags {
		view.SetFlagFilter(key, flag)
	}
	view.Sort = req.Sort
	if req.Page > 0 {
		view.SetPage(req.Page)
	}
	return view.Compute(rows)
}

func (s *Server) handleListScreens(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, screens.Registry())
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	id := screens.ID(chi.URLParam(r, "screen"))
	if !screens.Known(id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown screen"})
		return
	}

	var req queryRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	ctx := r.Context()

	switch id {
	case screens.RuleGrid:
		rows, err := s.rules.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.RuleGridSchema(), rows, req))
	case screens.Publish:
		rows, err := s.rules.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.PublishSchema(), rows, req))
	case screens.Collaborate:
		rows, err := s.rules.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.CollaborateSchema(), rows, req))
	case screens.Generate:
		rows, err := s.stores.Documents.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(generateSchema(req.Collateral), rows, req))
	case screens.Queued:
		rows, err := s.stores.Queued.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.QueuedSchema(), rows, req))
	case screens.Portfolio:
		rows, err := s.stores.Portfolio.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.PortfolioSchema(), rows, req))
	case screens.Logs:
		rows, err := s.activity.Recent(ctx, activity.ListOptions{})
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.LogsSchema(), rows, req))
	case screens.Users:
		rows, err := s.users.List(ctx)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runQuery(screens.UsersSchema(), rows, req))
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown screen"})
	}
}

// generateSchema picks the document columns for the requested collateral
// type, defaulting to ANOC when the client doesn't say.
func generateSchema(t collateral.Type) grid.Schema[collateral.Document] {
	if t == "" {
		t = collateral.TypeANOC
	}
	return collateral.PickerSchema(t)
}

// handleExport streams the screen's filtered, sorted rows as a CSV
// download. Paging is ignored: the export covers every matching row.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id := screens.ID(chi.URLParam(r, "screen"))
	if !screens.Known(id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown screen"})
		return
	}

	var req queryRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	req.PageSize = -1 // no window
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		"attachment; filename="+export.Filename(string(id), time.Now()))

	var err error
	switch id {
	case screens.RuleGrid:
		err = exportRows(ctx, w, s.rules.List, screens.RuleGridSchema(), req)
	case screens.Publish:
		err = exportRows(ctx, w, s.rules.List, screens.PublishSchema(), req)
	case screens.Collaborate:
		err = exportRows(ctx, w, s.rules.List, screens.CollaborateSchema(), req)
	case screens.Generate:
		err = exportRows(ctx, w, s.stores.Documents.List, generateSchema(req.Collateral), req)
	case screens.Queued:
		err = exportRows(ctx, w, s.stores.Queued.List, screens.QueuedSchema(), req)
	case screens.Portfolio:
		err = exportRows(ctx, w, s.stores.Portfolio.List, screens.PortfolioSchema(), req)
	case screens.Logs:
		err = exportRows(ctx, w, func(ctx context.Context) ([]activity.Entry, error) {
			return s.activity.Recent(ctx, activity.ListOptions{})
		}, screens.LogsSchema(), req)
	case screens.Users:
		err = exportRows(ctx, w, s.users.List, screens.UsersSchema(), req)
	}
	if err != nil {
		s.logger.Error("csv export failed", "screen", id, "error", err)
		return
	}

	s.activity.Log(ctx, activity.Entry{
		User:   req.User,
		Action: activity.ActionExport,
		Target: screens.Title(id),
	})
}

func exportRows[T any](ctx context.Context, w io.Writer, list func(context.Context) ([]T, error), schema grid.Schema[T], req queryRequest) error {
	rows, err := list(ctx)
	if err != nil {
		return err
	}
	res := runQuery(schema, rows, req)
	return export.WriteCSV(w, schema, res.Rows)
}
