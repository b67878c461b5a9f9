package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/gx/internal/adapters/broker"
	"github.com/mikey-austin/gx/internal/adapters/config"
	"github.com/mikey-austin/gx/internal/core"
)

type brokerFlags struct {
	listen         string
	allowAnonymous bool
	username       string
	password       string
}

func brokerCommand() *cobra.Command {
	var flags brokerFlags

	cmd := &cobra.Command{
		Use:   "broker",
		Short: "Run an embedded MQTT broker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			cfg := brokerConfig(app.cfg.Broker, flags)
			if !cfg.AllowAnonymous && cfg.Username == "" {
				app.logger.Warn("no broker credentials configured; allowing anonymous clients")
				cfg.AllowAnonymous = true
			}

			b, err := broker.New(app.logger.With(zap.String("component", "broker")), cfg)
			if err != nil {
				return core.WrapError(core.ExitUsage, "configure broker", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if err := b.Run(ctx); err != nil {
				return core.WrapError(core.ExitRuntime, "broker", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.listen, "listen", "", "listen address (default "+broker.DefaultListen+")")
	cmd.Flags().BoolVar(&flags.allowAnonymous, "allow-anonymous", false, "allow clients without credentials")
	cmd.Flags().StringVar(&flags.username, "username", "", "client username")
	cmd.Flags().StringVar(&flags.password, "password", "", "client password")

	return cmd
}

func brokerConfig(cfg config.BrokerConfig, flags brokerFlags) broker.Config {
	out := broker.Config{
		Listen:         cfg.Listen,
		AllowAnonymous: cfg.AllowAnonymous,
		Username:       cfg.Username,
		Password:       cfg.Password,
		TLSCA:          cfg.TLSCA,
		TLSCert:        cfg.TLSCert,
		TLSKey:         cfg.TLSKey,
	}
	if flags.listen != "" {
		out.Listen = flags.listen
	}
	if flags.allowAnonymous {
		out.AllowAnonymous = true
	}
	if flags.username != "" {
		out.Username = flags.username
		out.Password = flags.password
	}
	return out
}
