package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey-austin/gx/internal/core"
)

func demoCommand() *cobra.Command {
	var (
		age    int
		health float32
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a sample person before and after a birthday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			return app.withService(func(service core.Service) error {
				return service.Demo(age, health)
			})
		},
	}
	cmd.Flags().IntVar(&age, "age", 30, "starting age")
	cmd.Flags().Float32Var(&health, "health", 0.75, "health level")

	return cmd
}
