package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Port              int           `mapstructure:"port" yaml:"port" toml:"port"`                                              // The TCP port to listen on, on all interfaces.
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout" toml:"read_header_timeout"` // Deadline for reading request headers.
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`          // How long in-flight requests get to finish on shutdown.
	RedirectBaseURL   string        `mapstructure:"redirect_base_url" yaml:"redirect_base_url" toml:"redirect_base_url"`       // Target of legacy explorer redirects.
}

// Addr returns the listen address for the server.
func (c ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// SolanaConfig is the configuration for the Solana RPC connection used for supply lookups.
type SolanaConfig struct {
	RPCURL        string        `mapstructure:"rpc_url" yaml:"rpc_url" toml:"rpc_url"`                      // The HTTP JSON RPC endpoint.
	RetryAttempts uint          `mapstructure:"retry_attempts" yaml:"retry_attempts" toml:"retry_attempts"` // Attempts per account read, at least 1.
	RetryDelay    time.Duration `mapstructure:"retry_delay" yaml:"retry_delay" toml:"retry_delay"`          // Delay between attempts.
}

// AddressConfig is the configuration for address conversion.
type AddressConfig struct {
	StrictKeyValidation bool `mapstructure:"strict_key_validation" yaml:"strict_key_validation" toml:"strict_key_validation"` // Reject keys that are not on the ed25519 curve.
}

// LogConfig is the configuration for logging.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level" toml:"level"`                   // Minimum level, e.g. "info" or "debug".
	Development bool   `mapstructure:"development" yaml:"development" toml:"development"` // Human readable console output.
}

// MetricsConfig is the configuration for the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"` // Serve /metrics.
}

// Config wraps the entire configuration for the service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server" toml:"server"`
	Solana  SolanaConfig  `mapstructure:"solana" yaml:"solana" toml:"solana"`
	Address AddressConfig `mapstructure:"address" yaml:"address" toml:"address"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" toml:"log"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" toml:"metrics"`
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must not be negative"))
	}
	if err := validateAbsoluteURL(c.Server.RedirectBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("server.redirect_base_url: %w", err))
	}
	if err := validateAbsoluteURL(c.Solana.RPCURL); err != nil {
		errs = append(errs, fmt.Errorf("solana.rpc_url: %w", err))
	}
	// Zero attempts would retry a failing read until the client disconnects.
	if c.Solana.RetryAttempts < 1 {
		errs = append(errs, errors.New("solana.retry_attempts must be at least 1"))
	}

	return errors.Join(errs...)
}

func validateAbsoluteURL(raw string) error {
	if raw == "" {
		return errors.New("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http or https url, got %q", raw)
	}

	return nil
}

// Load loads the config from the file path, falling back to defaults and env vars if the file
// does not exist. If the file exists, any env vars that are set will override the values loaded
// from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	// If the config file exists, we continue to read it, otherwise we fallback to using
	// environment variables
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from defaults and the environment variables.
func LoadEnv() (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadFile loads the config from a file on top of the defaults. Environment variables are ignored.
func LoadFile(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              3000,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			RedirectBaseURL:   "https://world.helium.com",
		},
		Solana: SolanaConfig{
			RPCURL:        "https://api.mainnet-beta.solana.com",
			RetryAttempts: 3,
			RetryDelay:    200 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_header_timeout", d.Server.ReadHeaderTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.redirect_base_url", d.Server.RedirectBaseURL)
	v.SetDefault("solana.rpc_url", d.Solana.RPCURL)
	v.SetDefault("solana.retry_attempts", d.Solana.RetryAttempts)
	v.SetDefault("solana.retry_delay", d.Solana.RetryDelay)
	v.SetDefault("address.strict_key_validation", d.Address.StrictKeyValidation)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)

	return v
}

var (
	// envBindings defines how environment variables map to configuration keys used by Viper.
	// Each entry maps a config key (as used in the struct, e.g. "server.port") to a list of
	// environment variable names that can provide its value.
	//
	// The first element in the list is the preferred environment variable name, and the second
	// (if present) is the name the service historically read, kept so existing deployments
	// continue to work.
	//
	// When loading, Viper will check each listed environment variable in order and use the first one
	// that is set.
	envBindings = map[string][]string{
		"server.port":                   {"SERVER_PORT", "PORT"},
		"server.read_header_timeout":    {"SERVER_READ_HEADER_TIMEOUT"},
		"server.shutdown_timeout":       {"SERVER_SHUTDOWN_TIMEOUT"},
		"server.redirect_base_url":      {"SERVER_REDIRECT_BASE_URL"},
		"solana.rpc_url":                {"SOLANA_RPC_URL", "SOLANA_RPC"},
		"solana.retry_attempts":         {"SOLANA_RETRY_ATTEMPTS"},
		"solana.retry_delay":            {"SOLANA_RETRY_DELAY"},
		"address.strict_key_validation": {"ADDRESS_STRICT_KEY_VALIDATION"},
		"log.level":                     {"LOG_LEVEL", "RUST_LOG"},
		"log.development":               {"LOG_DEVELOPMENT"},
		"metrics.enabled":               {"METRICS_ENABLED"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the env key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
