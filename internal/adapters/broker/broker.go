package broker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mqtt "github.com/mochi-mqtt/server/v2"
	"github.com/mochi-mqtt/server/v2/hooks/auth"
	"github.com/mochi-mqtt/server/v2/listeners"
	"go.uber.org/zap"

	gxmqtt "github.com/mikey-austin/gx/internal/adapters/mqtt"
)

// DefaultListen is the broker listen address when none is configured.
const DefaultListen = "127.0.0.1:1883"

// Config configures the embedded MQTT broker.
type Config struct {
	Listen         string
	AllowAnonymous bool
	Username       string
	Password       string
	TLSCA          string
	TLSCert        string
	TLSKey         string
}

// TLSEnabled reports whether any TLS path is set.
func (c Config) TLSEnabled() bool {
	return c.TLSCert != "" || c.TLSKey != "" || c.TLSCA != ""
}

// Broker runs an embedded MQTT broker for gx output.
type Broker struct {
	log    *zap.Logger
	server *mqtt.Server
	config Config
}

// New creates a broker. It does not listen until Run.
func New(log *zap.Logger, cfg Config) (*Broker, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(cfg.Listen) == "" {
		cfg.Listen = DefaultListen
	}

	server, err := newServer(log, cfg)
	if err != nil {
		return nil, err
	}
	return &Broker{log: log, server: server, config: cfg}, nil
}

// URL returns the client URL for this broker.
func (b *Broker) URL() string {
	return URL(b.config.Listen, b.config.TLSEnabled())
}

// Run serves until ctx is done.
func (b *Broker) Run(ctx context.Context) error {
	listenerConfig := listeners.Config{ID: "tcp-gx", Address: b.config.Listen}
	if b.config.TLSEnabled() {
		tlsConfig, err := gxmqtt.TLSConfig(b.config.TLSCA, b.config.TLSCert, b.config.TLSKey)
		if err != nil {
			return err
		}
		listenerConfig.TLSConfig = tlsConfig
	}

	if err := b.server.AddListener(listeners.NewTCP(listenerConfig)); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- b.server.Serve()
	}()
	b.log.Info("broker listening", zap.String("url", b.URL()))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
		<-ctx.Done()
	}
	return b.server.Close()
}

func newServer(log *zap.Logger, cfg Config) (*mqtt.Server, error) {
	server := mqtt.New(&mqtt.Options{InlineClient: true, Logger: newSlogLogger(log)})

	switch {
	case cfg.AllowAnonymous:
		if err := server.AddHook(new(auth.AllowHook), nil); err != nil {
			return nil, err
		}
	case cfg.Username != "":
		ledger := &auth.Ledger{
			Auth: auth.AuthRules{{Username: auth.RString(cfg.Username), Password: auth.RString(cfg.Password), Allow: true}},
			ACL:  auth.ACLRules{{Username: auth.RString(cfg.Username), Filters: auth.Filters{auth.RString("#"): auth.ReadWrite}}},
		}
		if err := server.AddHook(new(auth.Hook), &auth.Options{Ledger: ledger}); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("broker requires allow_anonymous or username")
	}

	return server, nil
}

// URL returns the broker URL for a listen address.
func URL(listen string, tlsEnabled bool) string {
	scheme := "mqtt"
	if tlsEnabled {
		scheme = "mqtts"
	}
	return fmt.Sprintf("%s://%s", scheme, listen)
}
