package core

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/mikey-austin/gx/internal/example/person"
	"github.com/mikey-austin/gx/internal/ports"
	"github.com/mikey-austin/gx/pkg/gx"
)

// Service orchestrates gx CLI use cases.
type Service struct {
	Sink   ports.Sink
	Logger *zap.Logger
}

type kindExample struct {
	literal string
	value   gx.Value
}

// kindExamples holds one sample literal per kind and the value it parses to.
var kindExamples = map[gx.Kind]kindExample{
	gx.KindBool:    {literal: "bool:true", value: gx.Bool(true)},
	gx.KindInt:     {literal: "int:-7", value: gx.Int(-7)},
	gx.KindFloat32: {literal: "f32:3.5", value: gx.Float32(3.5)},
	gx.KindFloat64: {literal: "f64:2.718281828", value: gx.Float64(2.718281828)},
	gx.KindText:    {literal: "str:x", value: gx.Text("x")},
}

// Print prints values without a trailing terminator. Callers parse
// literals with ParseLiterals before opening the sink.
func (s Service) Print(values []gx.Value) error {
	return s.write(values, false)
}

// Println prints values followed by a line terminator.
func (s Service) Println(values []gx.Value) error {
	return s.write(values, true)
}

func (s Service) write(values []gx.Value, newline bool) error {
	var (
		n   int
		err error
	)
	if newline {
		n, err = gx.Fprintln(s.Sink, values...)
	} else {
		n, err = gx.Fprint(s.Sink, values...)
	}
	s.log().Debug("printed", zap.Int("values", len(values)), zap.Int("bytes", n), zap.Bool("newline", newline))
	if err != nil {
		return WrapError(ExitRuntime, "write output", err)
	}
	return nil
}

// Inspect reports the kind and canonical text of each literal.
func (s Service) Inspect(args []string) (InspectResult, error) {
	values, err := ParseLiterals(args)
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{Values: make([]RenderedValue, 0, len(values))}
	for idx, v := range values {
		result.Values = append(result.Values, RenderedValue{
			Index:   idx,
			Literal: args[idx],
			Kind:    v.Kind().String(),
			Text:    gx.Format(v),
		})
	}
	result.Output = gx.Sprint(values...)
	return result, nil
}

// Kinds lists the supported kinds with an example each.
func (s Service) Kinds() KindsResult {
	result := KindsResult{}
	for _, kind := range gx.Kinds() {
		example := kindExamples[kind]
		result.Kinds = append(result.Kinds, KindSummary{
			Kind:    kind.String(),
			Literal: example.literal,
			Text:    gx.Format(example.value),
		})
	}
	return result
}

// Demo prints a person's fields before and after a birthday.
func (s Service) Demo(age int, health float32) error {
	p := person.New(age, health)
	if err := s.write(describe(p), true); err != nil {
		return err
	}
	p.Grow()
	return s.write(describe(p), true)
}

func describe(p person.Person) []gx.Value {
	return []gx.Value{
		gx.Text("age: "), gx.Int(p.Age()),
		gx.Text(", health: "), gx.Float32(p.Health()),
	}
}

// Echo prints payload verbatim as one line. Payloads published by
// println already carry their terminator and get no second one.
func (s Service) Echo(payload []byte) error {
	return s.write([]gx.Value{gx.Text(string(payload))}, !bytes.HasSuffix(payload, []byte("\n")))
}

func (s Service) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
