package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"marketfetch/internal/catalog"
	"marketfetch/internal/config"
	"marketfetch/internal/dispatch"
	"marketfetch/internal/handler"
	"marketfetch/internal/httpx"
	"marketfetch/internal/logger"
	"marketfetch/internal/provider/coingecko"
	"marketfetch/internal/provider/polygon"
	"marketfetch/internal/provider/polygonadapter"
	"marketfetch/internal/provider/yahoo"
	"marketfetch/internal/symbols"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "marketfetch: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		inputPath  string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "marketfetch",
		Short: "Fetch market data for one JSON request read from stdin",
		Long: `marketfetch reads a single JSON request and writes a single JSON response.

Request types:
  batch (default)  {"equities": ["AAPL"], "cryptos": ["bitcoin"]}
  intraday         {"type": "intraday", "symbol": "AAPL", "interval": "1m", "lookback": "1d"}
  price_summary    {"type": "price_summary", "symbol": "AAPL"}
  search           {"type": "search", "query": "apple", "limit": 10}`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logger.New(stderr, cfg.Log.Level, cfg.Log.Pretty)

			in := stdin
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			d, err := newDispatcher(cfg, log)
			if err != nil {
				return err
			}
			err = d.Run(cmd.Context(), in, stdout, pretty)
			if errors.Is(err, dispatch.ErrInvalidJSON) {
				log.Error().Err(err).Msg("unparseable request")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	cmd.Flags().StringVar(&inputPath, "input", "", "read the request from a file instead of stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON response")
	return cmd
}

func newDispatcher(cfg config.Config, log zerolog.Logger) (*dispatch.Dispatcher, error) {
	hc := httpx.New(time.Duration(cfg.HTTP.RequestTimeoutSec) * time.Second)
	hc.UserAgent = cfg.HTTP.UserAgent
	finance.SetHTTPClient(hc.HTTP)

	symbolMap := symbols.Default()
	yf := yahoo.New(yahoo.Config{Name: cfg.Yahoo.Name}, yahoo.FinanceBackend{})
	cg := coingecko.New(coingecko.Config{
		Endpoint: cfg.CoinGecko.Endpoint,
		APIKey:   cfg.CoinGecko.APIKey,
		Currency: cfg.CoinGecko.Currency,
	}, hc.Resty(""), symbolMap)

	intraday := &handler.Intraday{Fallback: yf, Log: log}
	if cfg.Polygon.Enabled() {
		pc, err := polygon.NewPolygonAPIClient(
			cfg.Polygon.APIKey,
			polygon.WithBaseURL(cfg.Polygon.Endpoint),
			polygon.WithHTTPClient(hc),
			polygon.WithHeader(http.Header{"Accept": []string{"application/json"}}),
		)
		if err != nil {
			return nil, fmt.Errorf("polygon client: %w", err)
		}
		intraday.Primary = polygonadapter.New(polygonadapter.Config{MaxCandles: cfg.Polygon.MaxCandles}, pc)
	} else {
		log.Debug().Msg("POLYGON_API_KEY not set; intraday uses fallback only")
	}

	return &dispatch.Dispatcher{
		Batch:    &handler.Batch{Equities: yf, Cryptos: cg, Log: log},
		Intraday: intraday,
		Summary:  &handler.Summary{History: yf, Log: log},
		Search:   &handler.Search{Catalog: catalog.Default()},
		Log:      log,
	}, nil
}
