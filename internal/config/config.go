package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	JWTSecret            string
	HomeServiceFee       float64
	DeliveryRelayPrice   float64
	DeliveryHomePrice    float64
	SimulateDelivery     bool
	DeliveryPollInterval time.Duration
	WorkerPoolSize       int
	ShutdownTimeout      time.Duration
	MaxOrdersBatch       int
}

const (
	defaultRunAddress           = ":8080"
	defaultJWTSecret            = "change-me-in-production"
	defaultHomeServiceFee       = 15
	defaultDeliveryRelayPrice   = 3.50
	defaultDeliveryHomePrice    = 6.90
	defaultDeliveryPollInterval = 30 * time.Second
	defaultWorkerPoolSize       = 2
	defaultShutdownTimeout      = 10 * time.Second
	defaultMaxOrdersBatch       = 16
)

// Load parses configuration from .env, flags and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		JWTSecret:            getString(lookup, "JWT_SECRET", defaultJWTSecret),
		HomeServiceFee:       getFloat(lookup, "HOME_SERVICE_FEE", defaultHomeServiceFee),
		DeliveryRelayPrice:   getFloat(lookup, "DELIVERY_RELAY_PRICE", defaultDeliveryRelayPrice),
		DeliveryHomePrice:    getFloat(lookup, "DELIVERY_HOME_PRICE", defaultDeliveryHomePrice),
		SimulateDelivery:     getBool(lookup, "SIMULATE_DELIVERY", false),
		DeliveryPollInterval: getDuration(lookup, "DELIVERY_POLL_INTERVAL", defaultDeliveryPollInterval),
		WorkerPoolSize:       getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxOrdersBatch:       getInt(lookup, "POLL_BATCH_SIZE", defaultMaxOrdersBatch),
	}

	fs := flag.NewFlagSet("coiffly", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.DeliveryPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.Float64Var(&cfg.HomeServiceFee, "home-fee", cfg.HomeServiceFee, "Extra fee for at-home services")
	fs.Float64Var(&cfg.DeliveryRelayPrice, "relay-price", cfg.DeliveryRelayPrice, "Delivery price for relay points")
	fs.Float64Var(&cfg.DeliveryHomePrice, "home-price", cfg.DeliveryHomePrice, "Delivery price for home delivery")
	fs.BoolVar(&cfg.SimulateDelivery, "simulate-delivery", cfg.SimulateDelivery, "Advance order statuses in the background")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent delivery workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between delivery simulation passes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxOrdersBatch, "poll-batch", cfg.MaxOrdersBatch, "Maximum orders per simulation batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.DeliveryPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.HomeServiceFee < 0 {
		cfg.HomeServiceFee = defaultHomeServiceFee
	}

	if cfg.DeliveryRelayPrice < 0 {
		cfg.DeliveryRelayPrice = defaultDeliveryRelayPrice
	}

	if cfg.DeliveryHomePrice < 0 {
		cfg.DeliveryHomePrice = defaultDeliveryHomePrice
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxOrdersBatch <= 0 {
		cfg.MaxOrdersBatch = defaultMaxOrdersBatch
	}

	if cfg.DeliveryPollInterval <= 0 {
		cfg.DeliveryPollInterval = defaultDeliveryPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
