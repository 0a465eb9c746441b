package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/restauratings/internal/config"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/explorer"
	"github.com/restauratings/internal/infrastructure/restapi"
	"github.com/restauratings/internal/pkg/logger"
	"github.com/restauratings/internal/pkg/utils"
	"github.com/restauratings/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	apiURL   string
	logLevel string
	logFile  string
	lat      float64
	lon      float64
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "explorer",
		Short: "Browse restaurants by cuisine in the terminal",
		Long: `Terminal client for the restaurant ratings API.

Shows cuisine categories with their centre points, the restaurants of a chosen
category and their reviews, and lets you post a review.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "restaurant API base URL (default: EXPLORER_API_URL)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "explorer.log", "log file; the terminal is used by the interface")
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "your latitude")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "your longitude")
	cmd.MarkFlagsRequiredTogether("lat", "lon")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if opts.apiURL != "" {
		cfg.Explorer.APIURL = opts.apiURL
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("log-file") || cfg.Log.File == "" {
		cfg.Log.File = opts.logFile
	}

	log, err := logger.NewWithOutput(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	var location *domain.Coordinate
	if cmd.Flags().Changed("lat") {
		if !utils.ValidateCoordinates(opts.lat, opts.lon) {
			return fmt.Errorf("invalid coordinates %.4f, %.4f", opts.lat, opts.lon)
		}
		location = &domain.Coordinate{Lat: opts.lat, Lng: opts.lon}
	}

	log.Info("Starting explorer",
		zap.String("api_url", cfg.Explorer.APIURL),
		zap.Bool("location_known", location != nil))

	client := restapi.NewClient(&cfg.Explorer, log)

	return tui.Run(cmd.Context(), client, explorer.NewStaticGeolocator(location), log)
}
