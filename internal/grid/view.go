package grid

// View composes the filter, sort, page and selection stages for one screen.
// It holds the view state the original screens kept per component; the row
// data itself is supplied on each Compute call.
type View[T any] struct {
	schema    Schema[T]
	Filters   *FilterState
	Sort      SortState
	Pages     PageState
	Selection *Selection
}

// Result is one computed render of a view.
type Result[T any] struct {
	Rows       []T   `json:"rows"`
	TotalRows  int   `json:"total_rows"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	PageIDs    []string `json:"page_ids"`
}

// NewView creates a view with no filtering, no sort, page 1 and an empty
// selection.
func NewView[T any](schema Schema[T], pageSize int) *View[T] {
	return &View[T]{
		schema:    schema,
		Filters:   NewFilterState(),
		Pages:     PageState{Size: pageSize, Page: 1},
		Selection: NewSelection(),
	}
}

// Schema returns the view's column configuration.
func (v *View[T]) Schema() Schema[T] {
	return v.schema
}

// SetSchema swaps the column configuration and resets filters, sort and
// paging, as happens when the collateral type changes.
func (v *View[T]) SetSchema(schema Schema[T]) {
	v.schema = schema
	v.Filters.Reset()
	v.Sort = SortState{}
	v.Pages.Page = 1
}

// SetTextFilter sets a substring filter and resets to page 1.
func (v *View[T]) SetTextFilter(key, substr string) {
	v.Filters.SetText(key, substr)
	v.Pages.Page = 1
}

// SetValueFilter sets a multi-select filter and resets to page 1.
func (v *View[T]) SetValueFilter(key string, values []string) {
	v.Filters.SetValues(key, values)
	v.Pages.Page = 1
}

// SetFlagFilter sets a tri-state filter and resets to page 1.
func (v *View[T]) SetFlagFilter(key string, flag TriState) {
	v.Filters.SetFlag(key, flag)
	v.Pages.Page = 1
}

// ClearFilters removes all filters and resets to page 1.
func (v *View[T]) ClearFilters() {
	v.Filters.Reset()
	v.Pages.Page = 1
}

// SortBy toggles sorting on a column.
func (v *View[T]) SortBy(key string) {
	v.Sort.Toggle(key)
}

// SetPageSize changes the window size and resets to page 1.
func (v *View[T]) SetPageSize(size int) {
	v.Pages.Size = size
	v.Pages.Page = 1
}

// SetPage requests a page; the value is clamped during Compute.
func (v *View[T]) SetPage(page int) {
	v.Pages.Page = page
}

// Compute runs filter, sort, clamp and window over rows. The clamped page
// number is stored back on the view so the next render starts in bounds.
func (v *View[T]) Compute(rows []T) Result[T] {
	filtered := Apply(rows, v.schema, v.Filters)
	sorted := Sort(filtered, v.schema, v.Sort)

	v.Pages = v.Pages.Clamp(len(sorted))
	window := Window(sorted, v.Pages)

	pageIDs := make([]string, 0, len(window))
	if v.schema.ID != nil {
		for _, row := range window {
			pageIDs = append(pageIDs, v.schema.ID(row))
		}
	}

	return Result[T]{
		Rows:       window,
		TotalRows:  len(sorted),
		TotalPages: TotalPages(len(sorted), v.Pages.Size),
		Page:       v.Pages.Page,
		PageSize:   v.Pages.Size,
		PageIDs:    pageIDs,
	}
}
