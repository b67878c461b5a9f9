package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/mikey-austin/gx/internal/core"
)

func TestHumanPrinterInspect(t *testing.T) {
	out := &bytes.Buffer{}
	result := core.InspectResult{
		Values: []core.RenderedValue{
			{Index: 0, Literal: "int:-7", Kind: "int", Text: "-7"},
			{Index: 1, Literal: "str:a b", Kind: "text", Text: "a b"},
		},
		Output: "-7a b",
	}
	if err := (HumanPrinter{W: out}).Print(result); err != nil {
		t.Fatalf("print: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "INDEX") || !strings.Contains(lines[2], `"a b"`) {
		t.Fatalf("unexpected table %q", out.String())
	}
	if lines[3] != `output: "-7a b"` {
		t.Fatalf("unexpected output line %q", lines[3])
	}
}

func TestHumanPrinterKinds(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out := &bytes.Buffer{}
	result := core.KindsResult{Kinds: []core.KindSummary{
		{Kind: "float32", Literal: "f32:3.5", Text: "3.500000"},
	}}
	if err := (HumanPrinter{W: out}).Print(result); err != nil {
		t.Fatalf("print: %v", err)
	}
	for _, want := range []string{"KIND", "float32", "f32:3.5", "3.500000"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in %q", want, out.String())
		}
	}
}

func TestHumanPrinterDefault(t *testing.T) {
	out := &bytes.Buffer{}
	if err := (HumanPrinter{W: out}).Print(struct{}{}); err != nil {
		t.Fatalf("print: %v", err)
	}
	if out.String() != "ok\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestJSONPrinter(t *testing.T) {
	out := &bytes.Buffer{}
	result := core.InspectResult{
		Values: []core.RenderedValue{{Index: 0, Literal: "bool:true", Kind: "bool", Text: "true"}},
		Output: "true",
	}
	if err := (JSONPrinter{W: out}).Print(result); err != nil {
		t.Fatalf("print: %v", err)
	}
	var decoded core.InspectResult
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Output != "true" || decoded.Values[0].Kind != "bool" {
		t.Fatalf("unexpected decoded %+v", decoded)
	}
}
