package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/gx/internal/adapters/sink"
	"github.com/mikey-austin/gx/internal/core"
)

func tailCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print messages published to the MQTT topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			if count < 0 {
				return core.UsageError("count must not be negative")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			client, err := app.mqttClient()
			if err != nil {
				return err
			}
			defer client.Close()

			payloads, err := client.Messages(ctx, app.cfg.MQTT.Topic)
			if err != nil {
				return core.WrapError(core.ExitRuntime, "subscribe", err)
			}
			app.logger.Info("tailing", zap.String("topic", app.cfg.MQTT.Topic))

			service := core.Service{Sink: sink.NewStream(app.stdout), Logger: app.logger}
			seen := 0
			for {
				select {
				case <-ctx.Done():
					return nil
				case payload := <-payloads:
					if err := service.Echo(payload); err != nil {
						return err
					}
					seen++
					if count > 0 && seen >= count {
						return nil
					}
				}
			}
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "exit after this many messages (0 means no limit)")

	return cmd
}
