package grid

// ColumnKind describes how a column's values are displayed, filtered and sorted
type ColumnKind string

const (
	KindText       ColumnKind = "text"
	KindCategory   ColumnKind = "category"
	KindFlag       ColumnKind = "flag"
	KindDate       ColumnKind = "date"
	KindRichText   ColumnKind = "richtext"
	KindIdentifier ColumnKind = "identifier"
	KindComputed   ColumnKind = "computed"
)

// Column describes a single column of a screen's table. Value extracts the
// cell value from a row; the returned value may be a string, bool or number.
type Column[T any] struct {
	Key      string
	Title    string
	Kind     ColumnKind
	Editable bool
	Value    func(T) any
}

// Schema is the ordered column configuration for one screen, plus the
// row-identity accessor used by selection and bulk actions.
type Schema[T any] struct {
	Columns []Column[T]
	ID      func(T) string
}

// Column returns the column with the given key.
func (s Schema[T]) Column(key string) (Column[T], bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// Keys returns the column keys in declared order.
func (s Schema[T]) Keys() []string {
	keys := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		keys = append(keys, c.Key)
	}
	return keys
}
