package symbol

// ValueKind discriminates annotation argument payloads
type ValueKind uint8

const (
	ValueOther ValueKind = iota // Unresolved or uninterpreted argument
	ValuePrimitive
	ValueType
	ValueArray
)

// Value is a single annotation constructor argument
type Value struct {
	Kind ValueKind
	data any
}

// PrimitiveValue wraps a primitive payload such as string, bool, int64 or float64
func PrimitiveValue(v any) Value {
	return Value{Kind: ValuePrimitive, data: v}
}

// TypeValue wraps a type reference argument
func TypeValue(ref TypeRef) Value {
	return Value{Kind: ValueType, data: ref}
}

// ArrayValue wraps an ordered list of element values
func ArrayValue(elems ...Value) Value {
	return Value{Kind: ValueArray, data: elems}
}

// OtherValue wraps an argument the host could not resolve to a typed payload
func OtherValue(text string) Value {
	return Value{Kind: ValueOther, data: text}
}

// StringValue returns the primitive string payload when the value holds one
func (v Value) StringValue() (string, bool) {
	if v.Kind != ValuePrimitive {
		return "", false
	}
	s, ok := v.data.(string)
	return s, ok
}

// Interface returns the raw payload
func (v Value) Interface() any {
	return v.data
}

// Elements returns the element values of an array argument
func (v Value) Elements() []Value {
	if v.Kind != ValueArray {
		return nil
	}
	elems, _ := v.data.([]Value)
	return elems
}
