// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix LIGHTBNB_. After the prefix is removed
	the key is lowercased and every double underscore becomes a "." so it maps
	onto a nested struct field:

	  LIGHTBNB_DATABASE__HOST            -> database.host            -> Config.Database.Host
	  LIGHTBNB_SERVER__READ_TIMEOUT      -> server.read_timeout      -> Config.Server.ReadTimeout
	  LIGHTBNB_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix every recognized environment variable carries.
const EnvPrefix = "LIGHTBNB_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. LoadConfig seeds it
// with DefaultObservabilityConfig and env values override field by field.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch behavior based on env ("local" turns on SQL
// logging).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// Host, Name, User and Password are the connection contract; the rest tune
// the pgx pool. ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres URL for this database.
//
// User and password go through url.UserPassword so they are escaped as
// userinfo, not as a query string: a space stays a space and ':' or '@'
// cannot break the URL. The host/port pair gets IPv6 brackets when needed.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// envKey maps a raw env var name to a koanf key path.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
//
// Unlike a fatal-on-error loader, every failure is returned to the caller so
// the CLI decides how to exit.
func LoadConfig() (*Config, error) {
	// "." is the key-path delimiter: "server.port" means Config.Server.Port.
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Observability starts from the defaults so that setting a single
	// LIGHTBNB_OBSERVABILITY__* variable overrides only that field.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}

	// "" unmarshals everything from the root.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment are forced so logs and traces stay
	// consistently labeled.
	mainConfig.Observability.ServiceName = "lightbnb"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
