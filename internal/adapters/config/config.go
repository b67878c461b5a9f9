package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI configuration from config.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	MQTT   MQTTConfig   `toml:"mqtt"`
	Log    LogConfig    `toml:"log"`
	Broker BrokerConfig `toml:"broker"`
}

// OutputConfig selects where print output goes.
type OutputConfig struct {
	Sink   string `toml:"sink"`
	File   string `toml:"file"`
	Append bool   `toml:"append"`
}

// MQTTConfig configures the MQTT sink and tail.
type MQTTConfig struct {
	Broker    string `toml:"broker"`
	Topic     string `toml:"topic"`
	ClientID  string `toml:"client_id"`
	User      string `toml:"user"`
	Pass      string `toml:"pass"`
	TLSCA     string `toml:"tls_ca"`
	TLSCert   string `toml:"tls_cert"`
	TLSKey    string `toml:"tls_key"`
	TimeoutMS int64  `toml:"timeout_ms"`
}

// LogConfig configures diagnostics logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// BrokerConfig configures the embedded broker.
type BrokerConfig struct {
	Listen         string `toml:"listen"`
	AllowAnonymous bool   `toml:"allow_anonymous"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	TLSCA          string `toml:"tls_ca"`
	TLSCert        string `toml:"tls_cert"`
	TLSKey         string `toml:"tls_key"`
}

// Load loads the config file at path, or the default location when path is
// empty. A missing file returns an empty config.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, errors.New("config path is a directory")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gx", "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gx", "config.toml"), nil
}
