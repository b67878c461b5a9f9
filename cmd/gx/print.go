package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey-austin/gx/internal/core"
)

const literalHelp = `Each argument is a literal of the form kind:value, where kind is one of
bool, int, f32 (float32), f64 (float64) or str (text). Arguments without a
known kind prefix are printed as text. Use -- before literals that start
with a dash.`

func printCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [literal...]",
		Short: "Print values without separators",
		Long:  literalHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := core.ParseLiterals(args)
			if err != nil {
				return err
			}
			app := fromContext(cmd)
			return app.withService(func(service core.Service) error {
				return service.Print(values)
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func printlnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "println [literal...]",
		Short: "Print values followed by a newline",
		Long:  literalHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := core.ParseLiterals(args)
			if err != nil {
				return err
			}
			app := fromContext(cmd)
			return app.withService(func(service core.Service) error {
				return service.Println(values)
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [literal...]",
		Short: "Show the kind and canonical text of each literal",
		Long:  literalHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := core.Service{Logger: app.logger}.Inspect(args)
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported value kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			return app.printer.Print(core.Service{Logger: app.logger}.Kinds())
		},
	}
}
