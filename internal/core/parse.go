package core

import (
	"strconv"
	"strings"

	"github.com/mikey-austin/gx/pkg/gx"
)

// literalKinds maps literal prefixes to kinds.
var literalKinds = map[string]gx.Kind{
	"bool":    gx.KindBool,
	"int":     gx.KindInt,
	"f32":     gx.KindFloat32,
	"float32": gx.KindFloat32,
	"f64":     gx.KindFloat64,
	"float64": gx.KindFloat64,
	"str":     gx.KindText,
	"text":    gx.KindText,
}

// ParseLiteral converts a command-line literal of the form kind:value into a
// printable value. Arguments without a known kind prefix are text.
func ParseLiteral(arg string) (gx.Value, error) {
	prefix, raw, ok := strings.Cut(arg, ":")
	if !ok {
		return gx.Text(arg), nil
	}
	kind, ok := literalKinds[strings.ToLower(prefix)]
	if !ok {
		return gx.Text(arg), nil
	}

	switch kind {
	case gx.KindBool:
		switch raw {
		case "true":
			return gx.Bool(true), nil
		case "false":
			return gx.Bool(false), nil
		}
		return gx.Value{}, UsageError("invalid bool %q (want true or false)", raw)
	case gx.KindInt:
		n, err := strconv.ParseInt(raw, 10, strconv.IntSize)
		if err != nil {
			return gx.Value{}, WrapError(ExitUsage, "invalid int "+strconv.Quote(raw), numError(err))
		}
		return gx.Int(int(n)), nil
	case gx.KindFloat32:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return gx.Value{}, WrapError(ExitUsage, "invalid float32 "+strconv.Quote(raw), numError(err))
		}
		return gx.Float32(float32(f)), nil
	case gx.KindFloat64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return gx.Value{}, WrapError(ExitUsage, "invalid float64 "+strconv.Quote(raw), numError(err))
		}
		return gx.Float64(f), nil
	default:
		return gx.Text(raw), nil
	}
}

// ParseLiterals parses every argument, failing on the first bad literal.
func ParseLiterals(args []string) ([]gx.Value, error) {
	values := make([]gx.Value, 0, len(args))
	for idx, arg := range args {
		v, err := ParseLiteral(arg)
		if err != nil {
			return nil, WrapError(ExitUsage, "argument "+strconv.Itoa(idx+1), err)
		}
		values = append(values, v)
	}
	return values, nil
}

func numError(err error) error {
	if numErr, ok := err.(*strconv.NumError); ok {
		return numErr.Err
	}
	return err
}
