package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/jwalitptl/cliniccare-api/pkg/auth"
	"github.com/jwalitptl/cliniccare-api/pkg/logger"
)

type Config struct {
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	JWT        JWTConfig      `mapstructure:"jwt"`
	CORS       CORSConfig     `mapstructure:"cors"`
	Log        LogConfig      `mapstructure:"log"`
	BcryptCost int            `mapstructure:"bcrypt_cost"`
	Seed       SeedConfig     `mapstructure:"seed"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// DatabaseConfig also honours the conventional DB_* variables through
// envconfig; they win over file and SERVER-style keys.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT"`
	User     string `mapstructure:"user" envconfig:"DB_USER"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpiryMinutes int    `mapstructure:"expiry_minutes"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// SeedConfig describes the account created when the doctors table is empty.
type SeedConfig struct {
	DoctorUsername string `mapstructure:"doctor_username"`
	DoctorEmail    string `mapstructure:"doctor_email"`
	DoctorFullName string `mapstructure:"doctor_full_name"`
	DoctorPassword string `mapstructure:"doctor_password"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.timeout_seconds", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "cliniccare")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry_minutes", 30)

	v.SetDefault("cors.origins", []string{"http://localhost:3000"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("bcrypt_cost", 12)

	v.SetDefault("seed.doctor_username", "doctor")
	v.SetDefault("seed.doctor_email", "doctor@cliniccare.com")
	v.SetDefault("seed.doctor_full_name", "Dr. John Smith")
	v.SetDefault("seed.doctor_password", "password123")
}

// LoadConfig loads and validates the API server configuration.
func LoadConfig(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load reads configuration from an optional YAML file, the environment and
// built-in defaults without validating it. The seeder uses it directly since
// it never signs tokens. An explicit path must exist; otherwise a missing
// config.yaml is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/app/config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config.Database); err != nil {
		return nil, fmt.Errorf("failed to apply database env overrides: %w", err)
	}

	config.CORS.Origins = normalizeOrigins(config.CORS.Origins)
	return &config, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret (JWT_SECRET) must be set")
	}
	if c.JWT.ExpiryMinutes <= 0 {
		return fmt.Errorf("jwt.expiry_minutes must be positive, got %d", c.JWT.ExpiryMinutes)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	return nil
}

// normalizeOrigins accepts both YAML lists and a single comma-separated
// CORS_ORIGINS value.
func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

func (c *ServerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *JWTConfig) ToAuthConfig() *auth.Config {
	return &auth.Config{
		Secret: c.Secret,
		TTL:    time.Duration(c.ExpiryMinutes) * time.Minute,
	}
}

func (c *LogConfig) ToLoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Level,
		Pretty: c.Pretty,
	}
}
