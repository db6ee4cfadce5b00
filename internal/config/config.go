package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DBDriverMemory   = "memory"
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	AuthModeDev = "dev"
	AuthModeJWT = "jwt"
	AuthModeIDP = "idp"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	AppName   string `mapstructure:"APP_NAME"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBDSN          string `mapstructure:"DB_DSN"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	AuthMode      string        `mapstructure:"AUTH_MODE"`
	AuthJWTSecret string        `mapstructure:"AUTH_JWT_SECRET"`
	AuthJWTIssuer string        `mapstructure:"AUTH_JWT_ISSUER"`
	IDPBaseURL    string        `mapstructure:"IDP_BASE_URL"`
	IDPAPIKey     string        `mapstructure:"IDP_API_KEY"`
	IDPTimeout    time.Duration `mapstructure:"IDP_TIMEOUT"`

	HTTPReadTimeout  time.Duration `mapstructure:"HTTP_READ_TIMEOUT"`
	HTTPWriteTimeout time.Duration `mapstructure:"HTTP_WRITE_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"DB_DRIVER", "DB_DSN", "DB_MAX_OPEN_CONNS",
	"AUTH_MODE", "AUTH_JWT_SECRET", "AUTH_JWT_ISSUER",
	"IDP_BASE_URL", "IDP_API_KEY", "IDP_TIMEOUT",
	"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT",
}

// Load lee variables de entorno y, si existe, el archivo envFile (formato .env).
// Las variables de entorno pisan al archivo.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "animal-shelter")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_DRIVER", DBDriverMemory)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("AUTH_MODE", AuthModeDev)
	v.SetDefault("IDP_TIMEOUT", "5s")
	v.SetDefault("HTTP_READ_TIMEOUT", "5s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if strings.TrimSpace(envFile) != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.AuthMode = strings.ToLower(strings.TrimSpace(cfg.AuthMode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza combinaciones que no pueden arrancar.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DBDriverMemory:
	case DBDriverPostgres, DBDriverSQLite:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN is required for DB_DRIVER=%s", c.DBDriver)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	switch c.AuthMode {
	case AuthModeDev:
		if c.IsProduction() {
			return errors.New("AUTH_MODE=dev is not allowed with ENV=production")
		}
	case AuthModeJWT:
		if strings.TrimSpace(c.AuthJWTSecret) == "" {
			return errors.New("AUTH_JWT_SECRET is required for AUTH_MODE=jwt")
		}
	case AuthModeIDP:
		if strings.TrimSpace(c.IDPBaseURL) == "" || strings.TrimSpace(c.IDPAPIKey) == "" {
			return errors.New("IDP_BASE_URL and IDP_API_KEY are required for AUTH_MODE=idp")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.AuthMode)
	}

	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
