package extract

import "strconv"

// Kind enumerates the scalar shapes a normalized value can take.
type Kind int

const (
	// KindEmpty is the canonical "no value" sentinel. It is distinct from
	// the string "", the number 0 and the boolean false, which are all
	// meaningful values.
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is the normalized form of a page property. The zero Value is empty.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// String returns a string value. The empty string is still a string value,
// not an empty one; callers that want ""->empty use stringOrEmpty.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the value's shape.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the value is the empty sentinel.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Text renders the value for frontmatter output. Numbers drop trailing
// zeros, booleans render as true/false, empty renders as "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
