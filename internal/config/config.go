package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath     = "configs/config.toml"
	PathEnv         = "HRDESK_CONFIG"
	DefaultTokenTTL = 24 * time.Hour

	JWTSecretEnv     = "HRDESK_JWT_SECRET"
	DBPasswordEnv    = "HRDESK_DB_PASSWORD"
	RedisPasswordEnv = "HRDESK_REDIS_PASSWORD"
)

var ErrJWTSecretRequired = errors.New("jwt_secret is required")

type Config struct {
	Server struct {
		Host              string
		GRPCHost          string `toml:"grpc_host"`
		JWTSecret         string `toml:"jwt_secret"`
		CORSOrigin        string `toml:"cors_origin"`
		TrustProxy        bool   `toml:"trust_proxy"`
		ReadTimeout       time.Duration
		WriteTimeout      time.Duration
		ReadHeaderTimeout time.Duration
		StrReadTimeout    string `toml:"read_timeout"`
		StrWriteTimeout   string `toml:"write_timeout"`
		StrHeaderTimeout  string `toml:"read_header_timeout"`
		LogFile           string `toml:"log_file"`
		// Login attempts per second and burst allowed per client address.
		LoginRate  float64 `toml:"login_rate"`
		LoginBurst int     `toml:"login_burst"`
	}
	Database struct {
		Host     string
		User     string
		Password string
		Database string
		MaxConns int32 `toml:"max_conns"`
		Migrate  bool

		SeedHREmail    string `toml:"seed_hr_email"`
		SeedHRPassword string `toml:"seed_hr_password"`
	}
	Redis struct {
		RedisAddr         string `toml:"redis_addr"`
		RedisPassword     string `toml:"redis_password"`
		RedisDB           int    `toml:"redis_db"`
		AccessTokenTTL    time.Duration
		StrAccessTokenTTL string `toml:"access_token_ttl"`
	}
}

// Path returns the config location, honouring HRDESK_CONFIG.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}

	return DefaultPath
}

func GetConfig(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error read config file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, err
	}

	cfg, err := Parse(string(data))
	if err != nil {
		logger.Error("Error decode config file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Config is loaded", slog.String("path", path))
	return cfg, nil
}

// Parse decodes a TOML document and fills in defaults.
func Parse(data string) (*Config, error) {
	var cfg Config

	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.Redis.AccessTokenTTL, err = parseDuration(cfg.Redis.StrAccessTokenTTL, DefaultTokenTTL); err != nil {
		return nil, fmt.Errorf("invalid access_token_ttl: %w", err)
	}
	if cfg.Server.ReadTimeout, err = parseDuration(cfg.Server.StrReadTimeout, 10*time.Second); err != nil {
		return nil, fmt.Errorf("invalid read_timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDuration(cfg.Server.StrWriteTimeout, 10*time.Second); err != nil {
		return nil, fmt.Errorf("invalid write_timeout: %w", err)
	}
	if cfg.Server.ReadHeaderTimeout, err = parseDuration(cfg.Server.StrHeaderTimeout, 5*time.Second); err != nil {
		return nil, fmt.Errorf("invalid read_header_timeout: %w", err)
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = ":5000"
	}
	if cfg.Server.LogFile == "" {
		cfg.Server.LogFile = "server.log"
	}
	if cfg.Database.MaxConns <= 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Server.LoginRate <= 0 {
		cfg.Server.LoginRate = 1
	}
	if cfg.Server.LoginBurst <= 0 {
		cfg.Server.LoginBurst = 5
	}

	applyEnv(&cfg)

	if cfg.Server.JWTSecret == "" {
		return nil, ErrJWTSecretRequired
	}

	return &cfg, nil
}

// applyEnv lets secrets come from the environment instead of the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv(JWTSecretEnv); v != "" {
		cfg.Server.JWTSecret = v
	}
	if v := os.Getenv(DBPasswordEnv); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(RedisPasswordEnv); v != "" {
		cfg.Redis.RedisPassword = v
	}
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	return time.ParseDuration(value)
}
