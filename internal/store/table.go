package store

import (
	"slices"

	sq "github.com/Masterminds/squirrel"
)

// Table describes how an entity of type T maps onto a database table.
//
// Columns, Scan, InsertColumns/InsertValues and UpdateColumns/UpdateValues
// must line up positionally. IDColumn never appears in UpdateColumns, so a
// row's identifier cannot change once assigned.
type Table[T any] struct {
	Name      string
	IDColumn  string
	KeyColumn string

	// Columns are selected in this order and scanned through Scan.
	Columns []string
	Scan    func(*T) []any

	InsertColumns []string
	InsertValues  func(T) []any

	UpdateColumns []string
	UpdateValues  func(T) []any

	// ID returns the identifier used in the WHERE clause of an update.
	ID func(T) int64

	// Filters are named predicates for ListFiltered.
	Filters map[string]sq.Sqlizer
}

// TableInfo is the part of a [Table] the HTTP layer needs for routing and
// request decoding.
type TableInfo struct {
	Name      string
	IDColumn  string
	KeyColumn string
	Filters   []string
}

// Info returns the routing metadata of t. Filter names are sorted.
func (t Table[T]) Info() TableInfo {
	filters := make([]string, 0, len(t.Filters))
	for name := range t.Filters {
		filters = append(filters, name)
	}
	slices.Sort(filters)

	return TableInfo{
		Name:      t.Name,
		IDColumn:  t.IDColumn,
		KeyColumn: t.KeyColumn,
		Filters:   filters,
	}
}
