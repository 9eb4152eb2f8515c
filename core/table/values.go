package table

import (
	"fmt"
	"strconv"
)

// Cell coercion helpers. CSV files yield string cells while decoded JSON
// yields float64 and []any; the typed record constructors accept both.
// A missing or nil cell coerces to the zero value, mirroring how the data
// files omit optional fields.

// Int coerces the named cell to an int.
func Int(r Row, col string) (int, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return int(x), nil
	case string:
		if x == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(x)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", col, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("column %q: cannot coerce %T to int", col, v)
	}
}

// String coerces the named cell to a string.
func String(r Row, col string) (string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", nil
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	default:
		return "", fmt.Errorf("column %q: cannot coerce %T to string", col, v)
	}
}

// Ints coerces the named cell to a list of ints. The cell is expected to hold
// a decoded JSON list.
func Ints(r Row, col string) ([]int, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return nil, nil
	}
	switch x := v.(type) {
	case []int:
		return x, nil
	case []any:
		out := make([]int, 0, len(x))
		for _, e := range x {
			n, err := Int(Row{col: e}, col)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("column %q: cannot coerce %T to []int", col, v)
	}
}

// Strings coerces the named cell to a list of strings.
func Strings(r Row, col string) ([]string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return nil, nil
	}
	switch x := v.(type) {
	case []string:
		return x, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			s, err := String(Row{col: e}, col)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("column %q: cannot coerce %T to []string", col, v)
	}
}
