package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Storage   StorageConfig   `yaml:"storage"`
	Tracing   TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
	Redis     RedisConfig     `yaml:"redis"`
	CORS      CORSConfig      `mapstructure:"cors" yaml:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Planner   PlannerConfig   `mapstructure:"planner" yaml:"planner"`
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-" yaml:"-"`
	MigrateOnly  bool `mapstructure:"-" yaml:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests" yaml:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes" yaml:"window_minutes"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	DBName    string `yaml:"dbname"`
	Charset   string `yaml:"charset"`
	ParseTime bool   `yaml:"parsetime"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret" yaml:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours" yaml:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type" yaml:"type"`
	LocalPath     string `mapstructure:"local_path" yaml:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint" yaml:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key" yaml:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key" yaml:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket" yaml:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint" yaml:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key" yaml:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key" yaml:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket" yaml:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled" yaml:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint" yaml:"collector_endpoint"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// PlannerConfig 学习计划相关的可调参数
type PlannerConfig struct {
	UpcomingDefaultDays int `mapstructure:"upcoming_default_days" yaml:"upcoming_default_days"`
	UpcomingMaxDays     int `mapstructure:"upcoming_max_days" yaml:"upcoming_max_days"`
	GoalLookaheadDays   int `mapstructure:"goal_lookahead_days" yaml:"goal_lookahead_days"`
}

type DashboardConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func (c DashboardConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("IELTS_TRACKER")
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")

	// Storage / OSS
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "uploads")
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("planner.upcoming_default_days", 7)
	v.SetDefault("planner.upcoming_max_days", 30)
	v.SetDefault("planner.goal_lookahead_days", 30)
	v.SetDefault("dashboard.cache_ttl_seconds", 60)
}

// Normalize 补齐缺省值并做生产环境校验，脚本直接用 yaml 解析的配置也要调用
func (c *Config) Normalize() error {
	c.JWT.ExpireTime = c.JWT.ExpireTime * time.Hour

	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	if c.Planner.UpcomingDefaultDays <= 0 {
		c.Planner.UpcomingDefaultDays = 7
	}
	if c.Planner.UpcomingMaxDays < c.Planner.UpcomingDefaultDays {
		c.Planner.UpcomingMaxDays = max(30, c.Planner.UpcomingDefaultDays)
	}
	if c.Planner.GoalLookaheadDays <= 0 {
		c.Planner.GoalLookaheadDays = 30
	}
	return nil
}
