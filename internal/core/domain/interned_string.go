package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Target names are interned so that map keys and dependency comparisons are
// handle comparisons instead of string comparisons.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns every element of strs, preserving order.
func NewInternedStrings(strs []string) []InternedString {
	res := make([]InternedString, len(strs))
	for i, s := range strs {
		res[i] = NewInternedString(s)
	}
	return res
}

// String returns the underlying string value.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the value was never assigned.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
