package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	Jobs     *Jobs
	Fees     *Fees
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Gateway struct {
	BaseURL       string `env:"GATEWAY_ADDRESS"`
	APIKey        string `env:"GATEWAY_API_KEY"`
	CallbackURL   string `env:"GATEWAY_CALLBACK_URL"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	Currency      string `env:"GATEWAY_CURRENCY" envDefault:"KES"`
}

type Jobs struct {
	ReconcileSpec  string        `env:"RECONCILE_CRON" envDefault:"@every 1m"`
	RetrySpec      string        `env:"RETRY_CRON" envDefault:"@every 30s"`
	PendingTimeout time.Duration `env:"PENDING_TIMEOUT" envDefault:"10m"`
	MaxRetries     int           `env:"DISBURSE_MAX_RETRIES" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"DISBURSE_RETRY_DELAY" envDefault:"30s"`
}

type Fees struct {
	CommissionRate string `env:"DEFAULT_COMMISSION_RATE" envDefault:"0.10"`
	CourierBaseFee string `env:"COURIER_BASE_FEE" envDefault:"100"`
	CourierPerKm   string `env:"COURIER_FEE_PER_KM" envDefault:"25"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var jobs Jobs
	var fees Fees
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&gateway.BaseURL, "g", "", "Mobile money gateway address")
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
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&jobs)
	if err != nil {
		return nil, fmt.Errorf("error parsing jobs config: %w", err)
	}
	err = env.Parse(&fees)
	if err != nil {
		return nil, fmt.Errorf("error parsing fees config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		Jobs:     &jobs,
		Fees:     &fees,
		App:      &app,
	}

	return &config, nil
}
