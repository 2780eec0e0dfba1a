package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type HTTP struct {
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	UserAgent         string `json:"user_agent"`
}

type Yahoo struct {
	Name string `json:"name"`
}

type CoinGecko struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
	Currency string `json:"currency"`
}

type Polygon struct {
	Endpoint   string `json:"endpoint"`
	APIKey     string `json:"api_key"`
	MaxCandles int    `json:"max_candles"`
}

// Enabled reports whether the primary intraday provider can be used.
func (p Polygon) Enabled() bool { return strings.TrimSpace(p.APIKey) != "" }

type Log struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

type Config struct {
	HTTP      HTTP      `json:"http"`
	Yahoo     Yahoo     `json:"yahoo"`
	CoinGecko CoinGecko `json:"coingecko"`
	Polygon   Polygon   `json:"polygon"`
	Log       Log       `json:"log"`
}

func Default() Config {
	return Config{
		HTTP:      HTTP{RequestTimeoutSec: 15, UserAgent: "marketfetch/1.0"},
		Yahoo:     Yahoo{Name: "yfinance"},
		CoinGecko: CoinGecko{Endpoint: "https://api.coingecko.com/api/v3", Currency: "usd"},
		Polygon:   Polygon{Endpoint: "https://api.polygon.io", MaxCandles: 100},
		Log:       Log{Level: "warn"},
	}
}

var loadDotenv = godotenv.Load

// Load reads JSON config from path. If path is empty it tries config.json in
// the working directory; a missing file yields defaults. A .env file, when
// present, feeds the environment, and environment variables win over both.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	// .env is optional and never overrides variables already set.
	_ = loadDotenv()
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.HTTP.RequestTimeoutSec = x }
	}
	if v := os.Getenv("HTTP_USER_AGENT"); v != "" { cfg.HTTP.UserAgent = v }
	if v := os.Getenv("COINGECKO_ENDPOINT"); v != "" { cfg.CoinGecko.Endpoint = v }
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" { cfg.CoinGecko.APIKey = v }
	if v := os.Getenv("POLYGON_ENDPOINT"); v != "" { cfg.Polygon.Endpoint = v }
	if v := os.Getenv("POLYGON_API_KEY"); v != "" { cfg.Polygon.APIKey = v }
	if v := os.Getenv("POLYGON_MAX_CANDLES"); v != "" {
		var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Polygon.MaxCandles = x }
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" { cfg.Log.Level = v }
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y": cfg.Log.Pretty = true
		case "0", "false", "no", "n": cfg.Log.Pretty = false
		}
	}
}
