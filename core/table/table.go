// Package table implements the flat tabular record shape shared by the
// loaders, the HTTP layer and the scheduling engine, including the
// JSON-column convention: list or mapping values embedded in otherwise
// scalar columns as JSON text.
package table

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Row is a single record keyed by column name.
type Row = map[string]any

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Clone returns a copy of the table whose rows can be modified without
// touching the original. Cell values are shared; callers replace cells,
// they do not mutate them.
func (t *Table) Clone() *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out.Rows = append(out.Rows, cp)
	}
	return out
}

// DecodeJSONColumns returns a copy of t where string cells of the declared
// columns are decoded into their structured form. A cell is decoded only when
// it is a string beginning with "["; anything else passes through unchanged,
// which makes the operation idempotent. Malformed JSON is reported, not
// swallowed.
func DecodeJSONColumns(t *Table, cols []string) (*Table, error) {
	out := t.Clone()
	for _, col := range cols {
		for i, r := range out.Rows {
			s, ok := r[col].(string)
			if !ok || !strings.HasPrefix(s, "[") {
				continue
			}
			var v any
			if err := json.Unmarshal([]byte(s), &v); err != nil {
				return nil, fmt.Errorf("decode column %q row %d: %w", col, i, err)
			}
			r[col] = v
		}
	}
	return out, nil
}

// EncodeJSONColumns is the inverse of DecodeJSONColumns: structured (slice or
// map) cells of the declared columns are re-encoded to JSON text, scalars pass
// through untouched.
func EncodeJSONColumns(t *Table, cols []string) (*Table, error) {
	out := t.Clone()
	for _, col := range cols {
		for i, r := range out.Rows {
			v, ok := r[col]
			if !ok || v == nil || !isStructured(v) {
				continue
			}
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encode column %q row %d: %w", col, i, err)
			}
			r[col] = string(b)
		}
	}
	return out, nil
}

func isStructured(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
