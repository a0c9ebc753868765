package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Redis     RedisConfig
	Auth      AuthConfig
	LLM       LLMConfig
	Sandbox   SandboxConfig
	Scoring   ScoringConfig
	CacheTTLs CacheTTLConfig
	Logger    LoggerConfig
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type DBConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type LLMConfig struct {
	OllamaServer string
	OllamaModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	Timeout      time.Duration
}

type SandboxConfig struct {
	Timeout       time.Duration
	MaxDelay      time.Duration
	MemoryLimitMB int
}

// ScoringConfig selects the XP penalty policy. "bands" is canonical; "linear" is deprecated.
type ScoringConfig struct {
	PenaltyPolicy string
}

type CacheTTLConfig struct {
	Lesson       time.Duration
	Leaderboard  time.Duration
	Achievements time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "pylearn")
	v.SetDefault("db.name", "pylearn")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.token_ttl", "24h")

	v.SetDefault("llm.ollama_server", "http://localhost:11434")
	v.SetDefault("llm.ollama_model", "llama3")
	v.SetDefault("llm.openai_model", "gpt-4o-mini")
	v.SetDefault("llm.timeout", "20s")

	v.SetDefault("sandbox.timeout", "5s")
	v.SetDefault("sandbox.max_delay", "1s")
	v.SetDefault("sandbox.memory_limit_mb", 50)

	v.SetDefault("scoring.penalty_policy", "bands")

	v.SetDefault("cache_ttls.lesson", "1h")
	v.SetDefault("cache_ttls.leaderboard", "1m")
	v.SetDefault("cache_ttls.achievements", "30m")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads config.yaml (if any) and PYLEARN_* environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("PYLEARN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			DBName:       v.GetString("db.name"),
			SSLMode:      v.GetString("db.sslmode"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
		},
		LLM: LLMConfig{
			OllamaServer: v.GetString("llm.ollama_server"),
			OllamaModel:  v.GetString("llm.ollama_model"),
			OpenAIAPIKey: v.GetString("llm.openai_api_key"),
			OpenAIModel:  v.GetString("llm.openai_model"),
			Timeout:      v.GetDuration("llm.timeout"),
		},
		Sandbox: SandboxConfig{
			Timeout:       v.GetDuration("sandbox.timeout"),
			MaxDelay:      v.GetDuration("sandbox.max_delay"),
			MemoryLimitMB: v.GetInt("sandbox.memory_limit_mb"),
		},
		Scoring: ScoringConfig{
			PenaltyPolicy: strings.ToLower(v.GetString("scoring.penalty_policy")),
		},
		CacheTTLs: CacheTTLConfig{
			Lesson:       v.GetDuration("cache_ttls.lesson"),
			Leaderboard:  v.GetDuration("cache_ttls.leaderboard"),
			Achievements: v.GetDuration("cache_ttls.achievements"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	switch cfg.Scoring.PenaltyPolicy {
	case "bands", "linear":
	default:
		return nil, fmt.Errorf("invalid scoring.penalty_policy %q", cfg.Scoring.PenaltyPolicy)
	}

	return cfg, nil
}

// GetDSN returns a lib/pq connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

// GetMigrateURL returns the postgres:// URL golang-migrate expects.
func (c *Config) GetMigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
