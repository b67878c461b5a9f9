package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/gx/internal/adapters/config"
	"github.com/mikey-austin/gx/internal/adapters/mqtt"
	"github.com/mikey-austin/gx/internal/adapters/output"
	"github.com/mikey-austin/gx/internal/adapters/sink"
	"github.com/mikey-austin/gx/internal/core"
	"github.com/mikey-austin/gx/internal/logging"
)

const defaultTimeout = 2 * time.Second

type app struct {
	cfg     config.Config
	printer output.Printer
	logger  *zap.Logger
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
}

type overrides struct {
	configPath string
	sink       string
	file       string
	appendFile bool
	broker     string
	topic      string
	user       string
	pass       string
	tlsCA      string
	tlsCert    string
	tlsKey     string
	timeout    time.Duration
	logLevel   string
	logFormat  string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(core.ExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gx",
		Short:        "Print typed values in their canonical text form",
		SilenceUsage: true,
	}

	var (
		opts    overrides
		jsonOut bool
		noColor bool
	)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path")
	root.PersistentFlags().StringVarP(&opts.sink, "sink", "s", "", "output sink (stdout|stderr|file|mqtt)")
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "output file for the file sink")
	root.PersistentFlags().BoolVar(&opts.appendFile, "append", false, "append to the output file")
	root.PersistentFlags().StringVarP(&opts.broker, "broker", "b", "", "MQTT broker URL")
	root.PersistentFlags().StringVar(&opts.topic, "topic", "", "MQTT topic")
	root.PersistentFlags().StringVar(&opts.user, "user", "", "MQTT username")
	root.PersistentFlags().StringVar(&opts.pass, "pass", "", "MQTT password")
	root.PersistentFlags().StringVar(&opts.tlsCA, "tls-ca", "", "TLS CA path")
	root.PersistentFlags().StringVar(&opts.tlsCert, "tls-cert", "", "TLS cert path")
	root.PersistentFlags().StringVar(&opts.tlsKey, "tls-key", "", "TLS key path")
	root.PersistentFlags().DurationVarP(&opts.timeout, "timeout", "t", 0, "MQTT operation timeout")
	root.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (console|json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return core.WrapError(core.ExitUsage, "invalid flags", err)
	})

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return core.WrapError(core.ExitRuntime, "load config", err)
		}
		applyOverrides(&cfg, opts)

		if noColor {
			pterm.DisableColor()
		}

		logger := logging.NewLogger(logging.LogConfig{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Color:  cfg.Log.Color && !noColor,
		})

		var printer output.Printer
		if jsonOut {
			printer = output.JSONPrinter{W: cmd.OutOrStdout()}
		} else {
			printer = output.HumanPrinter{W: cmd.OutOrStdout()}
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
			cfg:     cfg,
			printer: printer,
			logger:  logger,
			timeout: resolveTimeout(opts.timeout, cfg.MQTT.TimeoutMS),
			stdout:  cmd.OutOrStdout(),
			stderr:  cmd.ErrOrStderr(),
		}))
		return nil
	}

	root.AddCommand(printCommand())
	root.AddCommand(printlnCommand())
	root.AddCommand(inspectCommand())
	root.AddCommand(kindsCommand())
	root.AddCommand(demoCommand())
	root.AddCommand(tailCommand())
	root.AddCommand(brokerCommand())

	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	val := cmd.Context().Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}

func applyOverrides(cfg *config.Config, opts overrides) {
	if opts.sink != "" {
		cfg.Output.Sink = opts.sink
	}
	if opts.file != "" {
		cfg.Output.File = opts.file
		if cfg.Output.Sink == "" {
			cfg.Output.Sink = "file"
		}
	}
	if opts.appendFile {
		cfg.Output.Append = true
	}
	if opts.broker != "" {
		cfg.MQTT.Broker = opts.broker
	}
	if opts.topic != "" {
		cfg.MQTT.Topic = opts.topic
	}
	if opts.user != "" {
		cfg.MQTT.User = opts.user
	}
	if opts.pass != "" {
		cfg.MQTT.Pass = opts.pass
	}
	if opts.tlsCA != "" {
		cfg.MQTT.TLSCA = opts.tlsCA
	}
	if opts.tlsCert != "" {
		cfg.MQTT.TLSCert = opts.tlsCert
	}
	if opts.tlsKey != "" {
		cfg.MQTT.TLSKey = opts.tlsKey
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if cfg.Output.Sink == "" {
		cfg.Output.Sink = "stdout"
	}
	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = mqtt.DefaultTopic
	}
}

func resolveTimeout(flagVal time.Duration, cfgMS int64) time.Duration {
	if flagVal > 0 {
		return flagVal
	}
	if cfgMS > 0 {
		return time.Duration(cfgMS) * time.Millisecond
	}
	return defaultTimeout
}

// outputSink is a sink that must be closed once the command is done.
type outputSink interface {
	io.Writer
	Close() error
}

func (a *app) openSink() (outputSink, error) {
	switch strings.ToLower(a.cfg.Output.Sink) {
	case "stdout":
		return sink.NewStream(a.stdout), nil
	case "stderr":
		return sink.NewStream(a.stderr), nil
	case "file":
		f, err := sink.OpenFile(a.cfg.Output.File, a.cfg.Output.Append)
		if err != nil {
			return nil, core.WrapError(core.ExitRuntime, "open output file", err)
		}
		return f, nil
	case "mqtt":
		client, err := a.mqttClient()
		if err != nil {
			return nil, err
		}
		return mqtt.NewSink(client, a.cfg.MQTT.Topic, a.logger), nil
	default:
		return nil, core.UsageError("unknown sink %q (want stdout, stderr, file or mqtt)", a.cfg.Output.Sink)
	}
}

func (a *app) mqttClient() (*mqtt.Client, error) {
	if a.cfg.MQTT.Broker == "" {
		return nil, core.UsageError("broker is required (set --broker or config)")
	}
	client, err := mqtt.NewClient(mqtt.Options{
		BrokerURL: a.cfg.MQTT.Broker,
		ClientID:  a.cfg.MQTT.ClientID,
		Username:  a.cfg.MQTT.User,
		Password:  a.cfg.MQTT.Pass,
		TLSCA:     a.cfg.MQTT.TLSCA,
		TLSCert:   a.cfg.MQTT.TLSCert,
		TLSKey:    a.cfg.MQTT.TLSKey,
		Timeout:   a.timeout,
		Logger:    a.logger.With(zap.String("component", "mqtt")),
	})
	if err != nil {
		return nil, core.WrapError(core.ExitRuntime, "connect mqtt", err)
	}
	return client, nil
}

// withService runs fn against a service bound to the configured sink and
// closes the sink afterwards.
func (a *app) withService(fn func(core.Service) error) error {
	out, err := a.openSink()
	if err != nil {
		return err
	}
	runErr := fn(core.Service{Sink: out, Logger: a.logger})
	if err := out.Close(); err != nil && runErr == nil {
		runErr = core.WrapError(core.ExitRuntime, "close output", err)
	}
	if runErr != nil {
		a.logger.Debug("command failed", zap.Error(runErr))
	}
	return runErr
}
