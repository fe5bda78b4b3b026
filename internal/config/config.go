package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int    `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP
	Mongo     Mongo  `envPrefix:"MONGODB_"`
	Auth      Auth   `envPrefix:"AUTH_"`
	CORS      CORS   `envPrefix:"CORS_"`
	Health    Health `envPrefix:"HEALTH_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port         string `env:"PORT" envDefault:"3000"`
	EnableHTTPS  bool   `env:"HTTPS_ENABLED" envDefault:"false"`
	CertFileName string `env:"TLS_CERT_FILE" envDefault:"cert.pem"`
	KeyFileName  string `env:"TLS_KEY_FILE" envDefault:"key.pem"`
}

// Mongo contains database connection parameters.
type Mongo struct {
	URI              string        `env:"URI"`
	User             string        `env:"USER"`
	Password         string        `env:"PASSWORD"`
	Host             string        `env:"HOST" envDefault:"cluster0.ktxyk.mongodb.net"`
	AppName          string        `env:"APP_NAME" envDefault:"Cluster0"`
	Database         string        `env:"DATABASE" envDefault:"espressoEmporiumCoffeeDB"`
	CoffeeCollection string        `env:"COFFEE_COLLECTION" envDefault:"coffeeCollection"`
	UserCollection   string        `env:"USER_COLLECTION" envDefault:"userCollection"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"5s"`
}

// Auth contains write authentication parameters. Writes are open when
// JWTSecret is empty.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// CORS contains cross-origin parameters.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Health contains gRPC health probe parameters. The probe server is
// disabled when GRPCPort is empty.
type Health struct {
	GRPCPort      string        `env:"GRPC_PORT"`
	ProbeInterval time.Duration `env:"PROBE_INTERVAL" envDefault:"15s"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Health.ProbeInterval <= 0 {
		return nil, fmt.Errorf("HEALTH_PROBE_INTERVAL must be positive, got %s", cfg.Health.ProbeInterval)
	}

	return &cfg, nil
}

// ConnectionURI returns URI when set, otherwise the Atlas SRV connection
// string built from credentials and host.
func (m Mongo) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}

	u := url.URL{
		Scheme: "mongodb+srv",
		User:   url.UserPassword(m.User, m.Password),
		Host:   m.Host,
		Path:   "/",
	}
	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	q.Set("appName", m.AppName)
	u.RawQuery = q.Encode()

	return u.String()
}
