package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"cart-pricer/internal/config"
	"cart-pricer/internal/domain"
	"cart-pricer/internal/engine"
	"cart-pricer/internal/gateway"
	"cart-pricer/internal/obs"
	"cart-pricer/internal/report"
	"cart-pricer/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Define command-line flags; environment values are the defaults
	cartFile := flag.String("cart", cfg.CartPath, "Path to the cart YAML file (required)")
	rulesFile := flag.String("rules", cfg.RulesPath, "Path to the discount rules YAML file (required)")
	itemsFile := flag.String("items", cfg.ItemsPath, "Path to a CSV file of cart lines that replaces the cart file items")
	output := flag.String("output", cfg.Output, "Output format: text, json or full")
	flag.Parse()

	// Validate required flags
	if *cartFile == "" || *rulesFile == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -cart and -rules are required.")
		flag.Usage()
		os.Exit(1)
	}
	cfg.Output = *output
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	logger := obs.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel).With().
		Str("run_id", uuid.NewString()).
		Logger()

	// Wire the application
	repo := gateway.NewFileRepository(gateway.WithLogger(logger))
	pricingUseCase := usecase.NewPricingUseCase(repo, repo, engine.New(engine.WithLogger(logger)))

	logger.Info().Str("cart", *cartFile).Str("rules", *rulesFile).Str("items", *itemsFile).Msg("pricing_started")

	result, err := pricingUseCase.Price(context.Background(), usecase.PriceRequest{
		CartPath:  *cartFile,
		ItemsPath: *itemsFile,
		RulesPath: *rulesFile,
	})
	if err != nil {
		logger.Error().Err(err).Msg("pricing_failed")
		os.Exit(1)
	}

	logger.Info().
		Str("cart_id", result.CartID).
		Int("applied", len(result.Result.Applied)).
		Int("skipped", len(result.Result.Skipped)).
		Int64("savings_minor", result.TotalSavings.Minor()).
		Msg("pricing_finished")

	if err := write(os.Stdout, cfg.Output, result); err != nil {
		logger.Error().Err(err).Msg("output_failed")
		os.Exit(1)
	}
}

func write(w io.Writer, format string, r *domain.PricingReport) error {
	switch format {
	case config.OutputJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate JSON report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case config.OutputFull:
		_, err := fmt.Fprint(w, report.Full(*r))
		return err
	default:
		_, err := fmt.Fprintln(w, report.Text(r.Result))
		return err
	}
}
