package mqtt

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/mikey-austin/gx/internal/adapters/idgen"
)

// DefaultTopic is the topic used when none is configured.
const DefaultTopic = "gx/out"

// Options configures the MQTT client.
type Options struct {
	BrokerURL string
	ClientID  string
	Username  string
	Password  string
	TLSCA     string
	TLSCert   string
	TLSKey    string
	Timeout   time.Duration
	Logger    *zap.Logger
}

// Client wraps a connected paho client.
type Client struct {
	client  paho.Client
	log     *zap.Logger
	timeout time.Duration

	mu   sync.Mutex
	subs map[string]paho.MessageHandler
}

// NewClient creates and connects an MQTT client.
func NewClient(opts Options) (*Client, error) {
	if opts.BrokerURL == "" {
		return nil, errors.New("mqtt broker is required")
	}
	if opts.Timeout == 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ClientID == "" {
		opts.ClientID = idgen.ClientID("gx")
	}

	c := &Client{
		log:     opts.Logger,
		timeout: opts.Timeout,
		subs:    map[string]paho.MessageHandler{},
	}

	clientOpts := paho.NewClientOptions().AddBroker(opts.BrokerURL)
	clientOpts.SetClientID(opts.ClientID)
	clientOpts.SetConnectTimeout(opts.Timeout)
	clientOpts.SetAutoReconnect(true)
	clientOpts.SetOrderMatters(true)
	clientOpts.SetOnConnectHandler(c.resubscribe)
	clientOpts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.log.Warn("mqtt connection lost", zap.Error(err))
	})

	if opts.Username != "" {
		clientOpts.SetUsername(opts.Username)
		clientOpts.SetPassword(opts.Password)
	}

	tlsConfig, err := TLSConfig(opts.TLSCA, opts.TLSCert, opts.TLSKey)
	if err != nil {
		return nil, err
	}
	if tlsConfig != nil {
		clientOpts.SetTLSConfig(tlsConfig)
	}

	c.client = paho.NewClient(clientOpts)
	token := c.client.Connect()
	if !token.WaitTimeout(opts.Timeout) {
		return nil, errors.New("timeout connecting to mqtt broker")
	}
	if err := token.Error(); err != nil {
		return nil, err
	}
	opts.Logger.Debug("mqtt connected", zap.String("broker", opts.BrokerURL), zap.String("client_id", opts.ClientID))

	return c, nil
}

// resubscribe restores subscriptions after a reconnect. The broker drops
// them with the clean session.
func (c *Client) resubscribe(client paho.Client) {
	c.mu.Lock()
	subs := make(map[string]paho.MessageHandler, len(c.subs))
	for topic, handler := range c.subs {
		subs[topic] = handler
	}
	c.mu.Unlock()

	for topic, handler := range subs {
		token := client.Subscribe(topic, 1, handler)
		if !token.WaitTimeout(c.timeout) {
			c.log.Warn("mqtt resubscribe timed out", zap.String("topic", topic))
			continue
		}
		if err := token.Error(); err != nil {
			c.log.Warn("mqtt resubscribe failed", zap.String("topic", topic), zap.Error(err))
			continue
		}
		c.log.Debug("mqtt resubscribed", zap.String("topic", topic))
	}
}

// Publish publishes a message and waits for the broker to accept it.
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	c.log.Debug("mqtt publish", zap.String("topic", topic), zap.Int("bytes", len(payload)))
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(c.timeout) {
		return errors.New("timeout publishing to mqtt broker")
	}
	return token.Error()
}

// Messages subscribes to topic and streams payloads until ctx is done.
func (c *Client) Messages(ctx context.Context, topic string) (<-chan []byte, error) {
	payloads := make(chan []byte, 64)
	handler := func(_ paho.Client, msg paho.Message) {
		select {
		case payloads <- msg.Payload():
		case <-ctx.Done():
		}
	}

	c.log.Debug("mqtt subscribe", zap.String("topic", topic))
	c.mu.Lock()
	c.subs[topic] = handler
	c.mu.Unlock()
	token := c.client.Subscribe(topic, 1, handler)
	if !token.WaitTimeout(c.timeout) {
		c.forget(topic)
		return nil, errors.New("timeout subscribing to mqtt topic")
	}
	if err := token.Error(); err != nil {
		c.forget(topic)
		return nil, err
	}

	go func() {
		<-ctx.Done()
		c.forget(topic)
		token := c.client.Unsubscribe(topic)
		token.WaitTimeout(c.timeout)
	}()

	return payloads, nil
}

func (c *Client) forget(topic string) {
	c.mu.Lock()
	delete(c.subs, topic)
	c.mu.Unlock()
}

// Close disconnects from the broker.
func (c *Client) Close() error {
	c.client.Disconnect(250)
	return nil
}

// TLSConfig builds a TLS configuration from PEM paths. It returns nil when
// no path is set.
func TLSConfig(caPath, certPath, keyPath string) (*tls.Config, error) {
	if caPath == "" && certPath == "" && keyPath == "" {
		return nil, nil
	}

	config := &tls.Config{}
	if caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("failed to parse CA bundle")
		}
		config.RootCAs = pool
	}

	if certPath != "" || keyPath != "" {
		if certPath == "" || keyPath == "" {
			return nil, errors.New("both tls cert and key are required")
		}
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			return nil, err
		}
		config.Certificates = []tls.Certificate{cert}
	}

	return config, nil
}
