package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/tradingiq/bybit-client/internal/logger"
	"github.com/tradingiq/bybit-client/internal/sink"
	"github.com/tradingiq/bybit-client/rest"
	"github.com/tradingiq/bybit-client/types"
	"github.com/tradingiq/bybit-client/websocket"
)

// EnvPrefix is prepended to every environment override, e.g.
// BYBIT_STREAM_API_KEY for stream.api_key.
const EnvPrefix = "BYBIT"

// Config is the bybit-stream process configuration. The Kafka sink is
// enabled when kafka.brokers is non-empty.
type Config struct {
	ServiceName string           `mapstructure:"service_name"`
	Stream      StreamConfig     `mapstructure:"stream"`
	REST        RESTConfig       `mapstructure:"rest"`
	Kafka       sink.KafkaConfig `mapstructure:"kafka"`
	Telemetry   Telemetry        `mapstructure:"telemetry"`
	Metrics     MetricsConfig    `mapstructure:"metrics"`
	Logging     logger.Config    `mapstructure:"logging"`
}

type StreamConfig struct {
	Host         string        `mapstructure:"host"`
	APIKey       string        `mapstructure:"api_key"`
	APISecret    string        `mapstructure:"api_secret"`
	Topics       []string      `mapstructure:"topics"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
}

type RESTConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
}

// Telemetry enables OTLP tracing when Endpoint is set.
type Telemetry struct {
	Endpoint string `mapstructure:"otel_endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

// MetricsConfig serves Prometheus metrics on Addr. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
	Path string `mapstructure:"path"`
}

// Channels parses the configured topics.
func (s StreamConfig) Channels() ([]types.Channel, error) {
	return types.ParseChannels(s.Topics)
}

// Load reads defaults, then the optional file at path, then BYBIT_ prefixed
// environment variables, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("service_name", "bybit-stream")

	v.SetDefault("stream.host", websocket.MainnetBybit)
	v.SetDefault("stream.api_key", "")
	v.SetDefault("stream.api_secret", "")
	v.SetDefault("stream.topics", []string{"trade"})
	v.SetDefault("stream.ping_interval", websocket.PingInterval.String())
	v.SetDefault("stream.dial_timeout", websocket.DefaultDialTimeout.String())

	v.SetDefault("rest.base_url", rest.MainnetBybit)
	v.SetDefault("rest.timeout", rest.DefaultTimeout.String())
	v.SetDefault("rest.rate_limit", 0)
	v.SetDefault("rest.burst", 1)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "bybit.events")
	v.SetDefault("kafka.timeout", "10s")
	v.SetDefault("kafka.acks", "all")
	v.SetDefault("kafka.compression", "none")

	v.SetDefault("telemetry.otel_endpoint", "")
	v.SetDefault("telemetry.insecure", false)

	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.dev_mode", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size_mb", 100)
	v.SetDefault("logging.file.max_age_days", 7)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.compress", true)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  &cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			stringToBoolHook,
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func stringToBoolHook(f, t reflect.Kind, data interface{}) (interface{}, error) {
	if f == reflect.String && t == reflect.Bool {
		return strconv.ParseBool(data.(string))
	}
	return data, nil
}

func (c *Config) Validate() error {
	if c.Stream.Host == "" {
		return fmt.Errorf("stream.host is required")
	}
	if c.Stream.PingInterval <= 0 {
		return fmt.Errorf("stream.ping_interval must be > 0")
	}
	if c.Stream.DialTimeout <= 0 {
		return fmt.Errorf("stream.dial_timeout must be > 0")
	}
	if (c.Stream.APIKey == "") != (c.Stream.APISecret == "") {
		return fmt.Errorf("stream.api_key and stream.api_secret must be set together")
	}

	channels, err := c.Stream.Channels()
	if err != nil {
		return fmt.Errorf("stream.topics: %w", err)
	}
	for _, ch := range channels {
		if ch.RequiresAuthentication() && c.Stream.APIKey == "" {
			return fmt.Errorf("stream.topics: %s requires stream.api_key", ch.Topic())
		}
	}

	if c.REST.BaseURL == "" {
		return fmt.Errorf("rest.base_url is required")
	}
	if c.REST.RateLimit < 0 {
		return fmt.Errorf("rest.rate_limit must be >= 0")
	}
	if c.REST.RateLimit > 0 && c.REST.Burst < 1 {
		return fmt.Errorf("rest.burst must be >= 1")
	}

	if len(c.Kafka.Brokers) > 0 {
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
		}
		switch strings.ToLower(c.Kafka.Acks) {
		case "all", "leader", "none":
		default:
			return fmt.Errorf("kafka.acks must be one of [all, leader, none]")
		}
		switch strings.ToLower(c.Kafka.Compression) {
		case "none", "gzip", "snappy", "lz4", "zstd":
		default:
			return fmt.Errorf("kafka.compression must be one of [none, gzip, snappy, lz4, zstd]")
		}
	}

	if c.Metrics.Addr != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/'")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error]")
	}
	return nil
}
