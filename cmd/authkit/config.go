package main

import (
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/mongo"
	"github.com/dmitrymomot/authkit/pkg/pg"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	driverMemory   = "memory"
	driverMongo    = "mongo"
	driverPostgres = "postgres"
)

type appConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	Name           string `env:"APP_NAME" envDefault:"authkit"`
	JWTSecret      string `env:"JWT_SECRET,required,notEmpty"`
	CookieName     string `env:"AUTH_COOKIE_NAME" envDefault:"access_token"`
	CookieDomain   string `env:"AUTH_COOKIE_DOMAIN"`
	FrontendURL    string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	StorageDriver  string `env:"STORAGE_DRIVER" envDefault:"memory"`
	LogLevel       string `env:"LOG_LEVEL"`
	LogFormat      string `env:"LOG_FORMAT"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	// Proxy headers trusted for the client address, in priority order.
	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP     httpserver.Config
	Mongo    mongo.Config
	Postgres pg.Config
}
