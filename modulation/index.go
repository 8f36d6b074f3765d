package modulation

import (
	"encoding/json"
	"strconv"
)

// Index is an optional modulation index. The zero value is undefined.
type Index struct {
	value   float64
	defined bool
}

// IndexOf returns a defined index with value v.
func IndexOf(v float64) Index {
	return Index{value: v, defined: true}
}

// Value returns the index and whether it is defined.
func (x Index) Value() (float64, bool) {
	return x.value, x.defined
}

// Defined reports whether the scheme has a single defining index.
func (x Index) Defined() bool {
	return x.defined
}

// String formats the index, or "undefined".
func (x Index) String() string {
	if !x.defined {
		return "undefined"
	}
	return strconv.FormatFloat(x.value, 'g', 6, 64)
}

// MarshalJSON encodes a defined index as a number and an undefined one as null.
func (x Index) MarshalJSON() ([]byte, error) {
	if !x.defined {
		return []byte("null"), nil
	}
	return json.Marshal(x.value)
}
