package grid

// PageState is the (size, page) window over the filtered, sorted rows.
// Page numbers are 1-based.
type PageState struct {
	Size int `json:"size"`
	Page int `json:"page"`
}

// TotalPages returns the page count for n rows, never less than 1.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp returns the state with the page forced into [1, TotalPages(n, size)].
// Clamping happens before any window is produced, so an out-of-range page is
// never observable.
func (p PageState) Clamp(n int) PageState {
	total := TotalPages(n, p.Size)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > total {
		p.Page = total
	}
	return p
}

// Window slices rows to the state's page. The state must already be clamped.
func Window[T any](rows []T, p PageState) []T {
	if p.Size <= 0 {
		return append([]T(nil), rows...)
	}
	start := (p.Page - 1) * p.Size
	if start >= len(rows) {
		return nil
	}
	end := start + p.Size
	if end > len(rows) {
		end = len(rows)
	}
	return append([]T(nil), rows[start:end]...)
}
