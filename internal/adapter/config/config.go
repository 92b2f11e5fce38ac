package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Gateway holds the card-gateway credentials and the public front-end base
// URL the gateway redirects buyers back to. Credentials are required: a
// service that cannot sign gateway requests must not start.
type Gateway struct {
	BaseURL         string        `env:"GATEWAY_BASE_URL"`
	APIKey          string        `env:"GATEWAY_API_KEY"`
	SecretKey       string        `env:"GATEWAY_SECRET_KEY"`
	Timeout         time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"5s"`
	FrontendBaseURL string        `env:"FRONTEND_BASE_URL"`
}

// CallbackURL is the redirect target handed to the gateway at session
// creation.
func (g *Gateway) CallbackURL() string {
	return g.FrontendBaseURL + "/payment/callback"
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&gateway.BaseURL, "g", "", "Payment gateway base URL")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}

	if err := validateGateway(&gateway); err != nil {
		return nil, err
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		App:      &app,
	}

	return &config, nil
}

func validateGateway(g *Gateway) error {
	if g.BaseURL == "" {
		return errors.New("gateway base URL is not configured")
	}
	if g.APIKey == "" || g.SecretKey == "" {
		return errors.New("gateway credentials are not configured")
	}
	if g.FrontendBaseURL == "" {
		return errors.New("front-end base URL is not configured")
	}
	return nil
}
