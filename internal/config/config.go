package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	MigrateOnStart bool   `toml:"migrate_on_start"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limiting
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	AIRateLimitAllowedPerMin    int `toml:"ai_rate_limit_allowed_per_min"`

	// AI plan generation (OpenAI compatible chat completions)
	AIApiURL      string  `toml:"ai_api_url"`
	AIModel       string  `toml:"ai_model"`
	AITemperature float64 `toml:"ai_temperature"`
	AIMaxTokens   int     `toml:"ai_max_tokens"`
	AITimeout     string  `toml:"ai_timeout"`

	// exercise catalog
	ExerciseDBURL      string `toml:"exercise_db_url"`
	ExerciseDBLanguage int    `toml:"exercise_db_language"`
	ExerciseDBMaxPages int    `toml:"exercise_db_max_pages"`

	// sessions
	Timezone              string `toml:"timezone"`
	NotificationSoundPath string `toml:"notification_sound_path"`
	RunIdleTimeout        string `toml:"run_idle_timeout"`
	WeekCacheSizeMB       int    `toml:"week_cache_size_mb"`

	// scheduled jobs, robfig/cron schedule expressions
	AuthCleanupSchedule string `toml:"auth_cleanup_schedule"`
	RunEvictionSchedule string `toml:"run_eviction_schedule"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied and validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for in-memory TOML content.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:8080", "http://localhost:5173"}
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}
	if c.AIRateLimitAllowedPerMin == 0 {
		c.AIRateLimitAllowedPerMin = 3
	}
	if c.AIApiURL == "" {
		c.AIApiURL = "https://api.groq.com/openai/v1"
	}
	if c.AIModel == "" {
		c.AIModel = "llama3-70b-8192"
	}
	if c.AITemperature == 0 {
		c.AITemperature = 0.7
	}
	if c.AIMaxTokens == 0 {
		c.AIMaxTokens = 4000
	}
	if c.AITimeout == "" {
		c.AITimeout = "60s"
	}
	if c.ExerciseDBURL == "" {
		c.ExerciseDBURL = "https://wger.de/api/v2"
	}
	if c.ExerciseDBLanguage == 0 {
		c.ExerciseDBLanguage = 2
	}
	if c.ExerciseDBMaxPages == 0 {
		c.ExerciseDBMaxPages = 10
	}
	if c.Timezone == "" {
		c.Timezone = "America/Sao_Paulo"
	}
	if c.RunIdleTimeout == "" {
		c.RunIdleTimeout = "2h"
	}
	if c.WeekCacheSizeMB == 0 {
		c.WeekCacheSizeMB = 10
	}
	if c.AuthCleanupSchedule == "" {
		c.AuthCleanupSchedule = "@every 8h"
	}
	if c.RunEvictionSchedule == "" {
		c.RunEvictionSchedule = "@every 10m"
	}
}

func (c *Config) Validate() error {
	var err error
	if c.Port <= 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		err = multierr.Append(err, errors.New("postgres host, port and db name must be set"))
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		err = multierr.Append(err, errors.New("redis host and port must be set"))
	}
	if c.AITemperature < 0 || c.AITemperature > 2 {
		err = multierr.Append(err, fmt.Errorf("invalid ai temperature: %v", c.AITemperature))
	}
	if _, perr := time.ParseDuration(c.AITimeout); perr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid ai timeout: %w", perr))
	}
	if _, perr := time.ParseDuration(c.RunIdleTimeout); perr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid run idle timeout: %w", perr))
	}
	if _, lerr := time.LoadLocation(c.Timezone); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid timezone: %w", lerr))
	}
	return err
}

// Location returns the configured time zone; Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) AITimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.AITimeout)
	return d
}

func (c *Config) RunIdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RunIdleTimeout)
	return d
}
