package gx

import (
	"math"
	"strconv"
)

// floatDigits is the fractional digit count used for both float widths.
const floatDigits = 6

// AppendText appends the canonical text of v to dst.
func AppendText(dst []byte, v Value) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindInt:
		return strconv.AppendInt(dst, int64(v.i), 10)
	case KindFloat32, KindFloat64:
		return appendFixed(dst, v.f)
	case KindText:
		return append(dst, v.s...)
	default:
		return dst
	}
}

// Format returns the canonical text of v.
func Format(v Value) string {
	if v.kind == KindText {
		return v.s
	}
	return string(AppendText(nil, v))
}

// appendFixed renders f like C's %f.
func appendFixed(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		if math.Signbit(f) {
			return append(dst, "-nan"...)
		}
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, f, 'f', floatDigits, 64)
}
