package gx

// Kind identifies which primitive a Value carries.
type Kind uint8

// Supported kinds.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat32
	KindFloat64
	KindText
)

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindBool, KindInt, KindFloat32, KindFloat64, KindText}
}

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}
