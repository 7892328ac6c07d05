package lang

import "strconv"

// Type indicates the runtime type of a Value.
type Type int

const (
	// TypeNumber represents a numeric value.
	TypeNumber Type = iota

	// TypeText represents a string value. Text exists only as literals
	// inside function-call arguments; it can never result from a general
	// expression or be stored by an assignment.
	TypeText

	// TypeBoolean represents a boolean value produced by a conditional.
	TypeBoolean
)

// String returns a string representation of the value type.
func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "Number"

	case TypeText:
		return "Text"

	case TypeBoolean:
		return "Boolean"

	default:
		return "Unknown"
	}
}

// Value is the closed tagged union of the language's runtime types.
// A Value's type never changes implicitly: there is no numeric, string, or
// boolean coercion anywhere in the engine.
//
// The zero Value is the Number 0.
type Value struct {
	typ     Type
	num     float64
	text    string
	boolean bool
}

// NumberValue creates a Number value.
func NumberValue(f float64) Value {
	return Value{typ: TypeNumber, num: f}
}

// TextValue creates a Text value.
func TextValue(s string) Value {
	return Value{typ: TypeText, text: s}
}

// BooleanValue creates a Boolean value.
func BooleanValue(b bool) Value {
	return Value{typ: TypeBoolean, boolean: b}
}

// Type returns the runtime type tag of the value.
func (v Value) Type() Type { return v.typ }

// Number returns the numeric payload and whether the value is a Number.
func (v Value) Number() (float64, bool) {
	return v.num, v.typ == TypeNumber
}

// Text returns the string payload and whether the value is Text.
func (v Value) Text() (string, bool) {
	return v.text, v.typ == TypeText
}

// Boolean returns the boolean payload and whether the value is a Boolean.
func (v Value) Boolean() (bool, bool) {
	return v.boolean, v.typ == TypeBoolean
}

// String returns the display form of the value: numbers without a trailing
// zero fraction, text verbatim, booleans as true/false.
func (v Value) String() string {
	switch v.typ {
	case TypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)

	case TypeText:
		return v.text

	case TypeBoolean:
		return strconv.FormatBool(v.boolean)

	default:
		return ""
	}
}

// Interface returns the value as a native Go type (float64, string, or
// bool), suitable for serialization of environment snapshots.
func (v Value) Interface() any {
	switch v.typ {
	case TypeNumber:
		return v.num

	case TypeText:
		return v.text

	case TypeBoolean:
		return v.boolean

	default:
		return nil
	}
}
