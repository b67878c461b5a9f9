package gx

// Primitive lists the Go types a Value can be built from.
type Primitive interface {
	bool | int | float32 | float64 | string
}

// Value is a single printable argument. The zero Value prints nothing.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns an integer value.
func Int(v int) Value {
	return Value{kind: KindInt, i: v}
}

// Float32 returns a single-precision value.
func Float32(v float32) Value {
	return Value{kind: KindFloat32, f: float64(v)}
}

// Float64 returns a double-precision value.
func Float64(v float64) Value {
	return Value{kind: KindFloat64, f: v}
}

// Text returns a text value. The string is printed verbatim.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// Of returns the Value for v, picking the kind from T.
func Of[T Primitive](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case float32:
		return Float32(x)
	case float64:
		return Float64(x)
	case string:
		return Text(x)
	}
	return Value{}
}

// Kind reports the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the canonical text of v.
func (v Value) String() string {
	return Format(v)
}
