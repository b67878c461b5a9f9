package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pterm/pterm"

	"github.com/mikey-austin/gx/internal/core"
)

// HumanPrinter prints human-readable output.
type HumanPrinter struct {
	W io.Writer
}

// Print renders human output.
func (p HumanPrinter) Print(v any) error {
	w := writerOrStdout(p.W)
	switch data := v.(type) {
	case core.InspectResult:
		return printInspect(w, data)
	case core.KindsResult:
		return printKinds(w, data)
	default:
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
}

func printInspect(w io.Writer, result core.InspectResult) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "INDEX\tKIND\tLITERAL\tTEXT"); err != nil {
		return err
	}
	for _, val := range result.Values {
		_, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", val.Index, val.Kind, val.Literal, strconv.Quote(val.Text))
		if err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "output: %s\n", strconv.Quote(result.Output))
	return err
}

func printKinds(w io.Writer, result core.KindsResult) error {
	data := pterm.TableData{{"KIND", "LITERAL", "TEXT"}}
	for _, kind := range result.Kinds {
		data = append(data, []string{kind.Kind, kind.Literal, kind.Text})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
