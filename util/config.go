package util

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	RenderCacheTTL    time.Duration `mapstructure:"RENDER_CACHE_TTL"`

	// MaxPostLength is the max number of visible characters in a post body,
	// tags and escapes excluded.
	MaxPostLength int `mapstructure:"MAX_POST_LENGTH"`

	// MaxPostBytes is the max size of the raw post body, markup included.
	MaxPostBytes int `mapstructure:"MAX_POST_BYTES"`

	// MaxRenderBytes is the max size of the HTML a post body may render to.
	MaxRenderBytes int `mapstructure:"MAX_RENDER_BYTES"`
}

const (
	DefaultRenderCacheTTL = 10 * time.Minute
	DefaultMaxPostLength  = 10_000
	DefaultMaxPostBytes   = 64 << 10
	DefaultMaxRenderBytes = 1 << 20
)

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("RENDER_CACHE_TTL", DefaultRenderCacheTTL)
	v.SetDefault("MAX_POST_LENGTH", DefaultMaxPostLength)
	v.SetDefault("MAX_POST_BYTES", DefaultMaxPostBytes)
	v.SetDefault("MAX_RENDER_BYTES", DefaultMaxRenderBytes)

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	err = config.ValidateLimits()
	return
}

// ValidateLimits checks that the post limits are positive and fit the database columns.
func (config *Config) ValidateLimits() error {
	// post lengths are stored as int4
	if config.MaxPostLength < 1 || config.MaxPostLength > math.MaxInt32 {
		return fmt.Errorf("MAX_POST_LENGTH must be between 1 and %d, got %d", math.MaxInt32, config.MaxPostLength)
	}

	if config.MaxPostBytes < 1 {
		return fmt.Errorf("MAX_POST_BYTES must be positive, got %d", config.MaxPostBytes)
	}

	if config.MaxRenderBytes < 1 {
		return fmt.Errorf("MAX_RENDER_BYTES must be positive, got %d", config.MaxRenderBytes)
	}

	return nil
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	urlStr, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = urlStr.Hostname()
	port = urlStr.Port()

	if host == "" {
		err = fmt.Errorf("http server address %q has no host", config.HTTPServerAddress)
	}

	return
}

// ListenAddress returns the address for the HTTP server to listen on, e.g. "localhost:8080".
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		return host, nil
	}

	return net.JoinHostPort(host, port), nil
}
