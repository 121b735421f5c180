package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradingiq/bybit-client/rest"
)

func newTickersCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tickers [symbol]",
		Short: "Print the latest tickers as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			client := rest.NewClient(cfg.REST.BaseURL,
				rest.WithHTTPClient(&http.Client{Timeout: cfg.REST.Timeout}),
				rest.WithRateLimit(cfg.REST.RateLimit, cfg.REST.Burst),
				rest.WithLogger(log.Named("rest")),
			)

			var symbol string
			if len(args) == 1 {
				symbol = args[0]
			}
			tickers, err := client.Tickers(cmd.Context(), symbol)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tickers)
		},
	}
}
