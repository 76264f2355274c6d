package model

import (
	"bytes"
	"encoding/json"
)

// ValueKind tags the shape held by a Value.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
	ValueList
	ValueRange
	// ValueInvalid holds JSON that fits none of the shapes above. It is kept verbatim so
	// a stored filter round-trips unchanged.
	ValueInvalid
)

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	case ValueRange:
		return "range"
	default:
		return "invalid"
	}
}

// Range is the {min, max} shape of a price range. Nil bounds are missing.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Value is the operand of a FilterCondition: a scalar, a list of strings or a range.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	list []string
	rng  Range
	raw  json.RawMessage
}

// StringValue holds a string (tag key or ID, category, text).
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// NumberValue holds a number.
func NumberValue(n float64) Value { return Value{kind: ValueNumber, num: n} }

// BoolValue holds a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// ListValue holds a list of strings.
func ListValue(s ...string) Value { return Value{kind: ValueList, list: append([]string{}, s...)} }

// RangeOf holds r as is, missing bounds included.
func RangeOf(r Range) Value { return Value{kind: ValueRange, rng: r} }

// RangeValue holds the closed range [min, max].
func RangeValue(min, max float64) Value {
	return Value{kind: ValueRange, rng: Range{Min: &min, Max: &max}}
}

// Kind returns the shape held by v.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == ValueString }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == ValueNumber }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == ValueBool }

// AsList returns the list held by v.
func (v Value) AsList() ([]string, bool) { return v.list, v.kind == ValueList }

// AsRange returns the range held by v.
func (v Value) AsRange() (Range, bool) { return v.rng, v.kind == ValueRange }

// Strings normalizes v to a list: a string is wrapped into a singleton, a list is
// returned as is, anything else yields nil.
func (v Value) Strings() []string {
	switch v.kind {
	case ValueString:
		return []string{v.str}
	case ValueList:
		return v.list
	}
	return nil
}

// UnmarshalJSON decodes any JSON shape. It never fails on well-formed JSON: shapes that
// fit no variant become ValueInvalid.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = Value{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		list := make([]string, 0, len(items))
		for _, it := range items {
			var s string
			if err := json.Unmarshal(it, &s); err != nil {
				*v = invalidValue(data)
				return nil
			}
			list = append(list, s)
		}
		*v = Value{kind: ValueList, list: list}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		*v = RangeOf(Range{Min: decodeBound(fields["min"]), Max: decodeBound(fields["max"])})
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = NumberValue(n)
	}
	return nil
}

// MarshalJSON encodes v back to the shape it was decoded from.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueString:
		return json.Marshal(v.str)
	case ValueNumber:
		return json.Marshal(v.num)
	case ValueBool:
		return json.Marshal(v.b)
	case ValueList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case ValueRange:
		return json.Marshal(v.rng)
	case ValueInvalid:
		return v.raw, nil
	default:
		return []byte("null"), nil
	}
}

func invalidValue(data []byte) Value {
	return Value{kind: ValueInvalid, raw: append(json.RawMessage{}, data...)}
}

// decodeBound reads a numeric bound; anything that is not a number counts as missing.
func decodeBound(raw json.RawMessage) *float64 {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	return &n
}
