package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/server"
	scenariosvc "github.com/re-tools/property-atlas/pkg/services/scenario"
	"github.com/re-tools/property-atlas/pkg/store/cache"
	"github.com/re-tools/property-atlas/pkg/store/fees"
	scenariostore "github.com/re-tools/property-atlas/pkg/store/scenario"
)

var (
	feesPath      string
	scenariosPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Property Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&feesPath, "fees", "f", "",
		"Path to a fee schedule file overriding the built-in defaults")
	rootCmd.Flags().StringVarP(&scenariosPath, "scenarios", "s", "scenarios.json",
		"Path to the scenarios file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	feeStore := fees.NewStore()
	if feesPath != "" {
		var err error
		feeStore, err = fees.NewStoreFromFile(feesPath)
		if err != nil {
			return fmt.Errorf("failed to load fee schedule: %w", err)
		}
		logger.Info().Msgf("Fee schedule loaded from `%s`.", feesPath)
	}

	store, err := scenariostore.NewFileStore(scenariosPath)
	if err != nil {
		return fmt.Errorf("failed to open scenario store: %w", err)
	}

	resultCache := cache.NewMemoryCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		resultCache = cache.NewRedisCache(addr)
		logger.Info().Msgf("Using redis result cache at `%s`.", addr)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Fees:      feeStore,
			Cache:     resultCache,
			Scenarios: scenariosvc.NewService(store),
			Logger:    logger,
		},
	})

	return api.Start()
}
