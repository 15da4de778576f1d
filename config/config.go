package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Neo4j      Neo4jConfig
	Vector     VectorConfig
	Embedding  EmbeddingConfig
	Generation GenerationConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig
	Geo        GeoConfig
	Lexicon    LexiconConfig
	Log        LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	SessionCookie   string        `mapstructure:"session_cookie"`
}

// Neo4jConfig holds graph store connection settings
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// VectorConfig holds vector search settings
type VectorConfig struct {
	Address        string  `mapstructure:"address"`
	APIKey         string  `mapstructure:"api_key"`
	Collection     string  `mapstructure:"collection"`
	VectorField    string  `mapstructure:"vector_field"`
	IDField        string  `mapstructure:"id_field"`
	Metric         string  `mapstructure:"metric"`
	TopK           int     `mapstructure:"top_k"`
	ScoreThreshold float64 `mapstructure:"score_threshold"`
}

// EmbeddingConfig holds query embedding settings
type EmbeddingConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// GenerationConfig holds generative model settings
type GenerationConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	Model         string        `mapstructure:"model"`
	AssistantName string        `mapstructure:"assistant_name"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
}

// SessionConfig holds per-session state configuration
type SessionConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration (requests per minute)
type RateLimitConfig struct {
	PerIP      int `mapstructure:"per_ip"`
	Generation int `mapstructure:"generation"`
}

// GeoConfig holds store ranking configuration
type GeoConfig struct {
	MaxStores int `mapstructure:"max_stores"`
}

// LexiconConfig points at an optional YAML vocabulary file
type LexiconConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/catalogqa/")

	// Environment variable settings: server.port <- CATALOGQA_SERVER_PORT
	v.SetEnvPrefix("CATALOGQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that Unmarshal sees env-only values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Embeddings default to the generation credentials (same provider)
	if config.Embedding.APIKey == "" {
		config.Embedding.APIKey = config.Generation.APIKey
	}
	if config.Embedding.BaseURL == "" {
		config.Embedding.BaseURL = config.Generation.BaseURL
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env when present. Existing variables are never overridden.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.session_cookie", "catalogqa_session")

	// Graph store defaults
	v.SetDefault("neo4j.uri", "")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("neo4j.database", "")

	// Vector search defaults
	v.SetDefault("vector.address", "")
	v.SetDefault("vector.api_key", "")
	v.SetDefault("vector.collection", "catalog")
	v.SetDefault("vector.vector_field", "embedding")
	v.SetDefault("vector.id_field", "vector_id")
	v.SetDefault("vector.metric", "COSINE")
	v.SetDefault("vector.top_k", 5)
	v.SetDefault("vector.score_threshold", 0.6)

	// Embedding defaults
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.base_url", "")
	v.SetDefault("embedding.model", "text-embedding-004")

	// Generation defaults (Gemini OpenAI-compatible endpoint)
	v.SetDefault("generation.api_key", "")
	v.SetDefault("generation.base_url", "https://generativelanguage.googleapis.com/v1beta/openai/")
	v.SetDefault("generation.model", "gemini-2.0-flash")
	v.SetDefault("generation.assistant_name", "catalog assistant")
	v.SetDefault("generation.timeout", "30s")
	v.SetDefault("generation.max_attempts", 1)

	// Session defaults
	v.SetDefault("session.type", "memory")
	v.SetDefault("session.redis_url", "")
	v.SetDefault("session.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.generation", 300)

	v.SetDefault("geo.max_stores", 5)
	v.SetDefault("lexicon.file", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Neo4j.URI == "" {
		return fmt.Errorf("Neo4j URI is required (set CATALOGQA_NEO4J_URI)")
	}

	if config.Vector.Address == "" {
		return fmt.Errorf("vector search address is required (set CATALOGQA_VECTOR_ADDRESS)")
	}

	if config.Generation.APIKey == "" {
		return fmt.Errorf("generation API key is required (set CATALOGQA_GENERATION_API_KEY)")
	}

	if config.Generation.MaxAttempts < 1 {
		return fmt.Errorf("generation max_attempts must be at least 1, got: %d", config.Generation.MaxAttempts)
	}

	if config.Vector.TopK <= 0 {
		return fmt.Errorf("vector top_k must be positive, got: %d", config.Vector.TopK)
	}

	if config.Vector.ScoreThreshold < 0 || config.Vector.ScoreThreshold > 1 {
		return fmt.Errorf("vector score_threshold must be within [0, 1], got: %v", config.Vector.ScoreThreshold)
	}

	if config.Geo.MaxStores <= 0 {
		return fmt.Errorf("geo max_stores must be positive, got: %d", config.Geo.MaxStores)
	}

	if config.Session.Type != "memory" && config.Session.Type != "redis" {
		return fmt.Errorf("session type must be 'memory' or 'redis', got: %s", config.Session.Type)
	}

	if config.Session.Type == "redis" && config.Session.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when session type is 'redis'")
	}

	if config.Log.Format != "json" && config.Log.Format != "console" {
		return fmt.Errorf("log format must be 'json' or 'console', got: %s", config.Log.Format)
	}

	return nil
}
