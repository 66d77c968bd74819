package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Search    SearchConfig    `mapstructure:"search"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	MetricsPort     int           `mapstructure:"metrics_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	CORSMaxAge      string        `mapstructure:"cors_max_age"`
	SwaggerURL      string        `mapstructure:"swagger_url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	EnableLatency  bool `mapstructure:"enable_latency"`
	EnablePerRoute bool `mapstructure:"enable_per_route"`
	Workers        int  `mapstructure:"workers"`
	BufferSize     int  `mapstructure:"buffer_size"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

type CacheConfig struct {
	ToolsTTL     time.Duration `mapstructure:"tools_ttl"`
	LocalTTL     time.Duration `mapstructure:"local_ttl"`
	EmbeddingTTL time.Duration `mapstructure:"embedding_ttl"`
}

type AdminConfig struct {
	Password  string        `mapstructure:"password"`
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type EmbeddingConfig struct {
	Provider        string        `mapstructure:"provider"`
	Model           string        `mapstructure:"model"`
	Dimensions      int           `mapstructure:"dimensions"`
	OpenAIKey       string        `mapstructure:"openai_api_key"`
	GeminiKey       string        `mapstructure:"gemini_api_key"`
	AWSRegion       string        `mapstructure:"aws_region"`
	AWSAccessKey    string        `mapstructure:"aws_access_key"`
	AWSSecretKey    string        `mapstructure:"aws_secret_key"`
	AWSSessionToken string        `mapstructure:"aws_session_token"`
	MatchThreshold  float64       `mapstructure:"match_threshold"`
	MatchCount      int           `mapstructure:"match_count"`
	IndexWorkers    int           `mapstructure:"index_workers"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxFailures     uint32        `mapstructure:"max_failures"`
}

type SearchConfig struct {
	TrendingLimit int `mapstructure:"trending_limit"`
}

type TelemetryConfig struct {
	Exporters []ExporterConfig `mapstructure:"exporters"`
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// bindEnv registers the keys that are usually provided only through the
// environment, so AutomaticEnv picks them up even without a config file.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"server.port", "server.metrics_port",
		"log.level",
		"database.host", "database.port", "database.user", "database.password", "database.name", "database.sslmode",
		"redis.host", "redis.port", "redis.password", "redis.db",
		"admin.password", "admin.secret_key",
		"embedding.provider", "embedding.model",
		"embedding.openai_api_key", "embedding.gemini_api_key",
		"embedding.aws_region", "embedding.aws_access_key", "embedding.aws_secret_key", "embedding.aws_session_token",
	} {
		_ = v.BindEnv(key)
	}
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = "toolfinder:events"
	}
	if cfg.Cache.ToolsTTL == 0 {
		cfg.Cache.ToolsTTL = 5 * time.Minute
	}
	if cfg.Cache.LocalTTL == 0 {
		cfg.Cache.LocalTTL = 30 * time.Second
	}
	if cfg.Cache.EmbeddingTTL == 0 {
		cfg.Cache.EmbeddingTTL = 24 * time.Hour
	}
	if cfg.Admin.TokenTTL == 0 {
		cfg.Admin.TokenTTL = 15 * time.Minute
	}
	if cfg.Embedding.MatchThreshold == 0 {
		cfg.Embedding.MatchThreshold = 0.5
	}
	if cfg.Embedding.MatchCount == 0 {
		cfg.Embedding.MatchCount = 5
	}
	if cfg.Embedding.IndexWorkers == 0 {
		cfg.Embedding.IndexWorkers = 4
	}
	if cfg.Embedding.Timeout == 0 {
		cfg.Embedding.Timeout = 30 * time.Second
	}
	if cfg.Embedding.MaxFailures == 0 {
		cfg.Embedding.MaxFailures = 5
	}
	if cfg.Search.TrendingLimit == 0 {
		cfg.Search.TrendingLimit = 6
	}
	if cfg.Metrics.Workers == 0 {
		cfg.Metrics.Workers = 2
	}
	if cfg.Metrics.BufferSize == 0 {
		cfg.Metrics.BufferSize = 1000
	}
}

func GetConfig() *Config {
	return &globalConfig
}
