package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/smoothie-menu/internal/db"
	"github.com/ziadkadry99/smoothie-menu/internal/devapi"
	"github.com/ziadkadry99/smoothie-menu/internal/server"
)

var devapiCmd = &cobra.Command{
	Use:   "devapi",
	Short: "Run a local catalog API seeded from fixtures",
	Long: `Starts a catalog API with the same endpoints as the production backend
(GET /api/categories and GET /api/smoothies?category=ID), backed by SQLite
and seeded from a YAML fixture file or the built-in sample menu.`,
	RunE: runDevAPI,
}

func init() {
	devapiCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	devapiCmd.Flags().String("fixtures", "", "YAML fixture file (overrides config)")
	devapiCmd.Flags().Bool("mongo-ids", false, "emit identifiers as _id")
	devapiCmd.Flags().String("db", "", "SQLite database path (overrides config)")
	rootCmd.AddCommand(devapiCmd)
}

func runDevAPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.DevAPI.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("fixtures") {
		cfg.DevAPI.Fixtures, _ = cmd.Flags().GetString("fixtures")
	}
	if cmd.Flags().Changed("mongo-ids") {
		cfg.DevAPI.MongoIDs, _ = cmd.Flags().GetBool("mongo-ids")
	}
	if cmd.Flags().Changed("db") {
		cfg.DevAPI.DBPath, _ = cmd.Flags().GetString("db")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Open(cfg.DevAPI.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	fixtures, err := devapi.LoadFixtures(cfg.DevAPI.Fixtures)
	if err != nil {
		return err
	}
	store := devapi.NewStore(database)
	if err := devapi.Seed(cmd.Context(), store, fixtures); err != nil {
		return fmt.Errorf("seeding fixtures: %w", err)
	}
	logger.Info("fixtures loaded",
		zap.String("db", database.Path()),
		zap.Int("categories", len(fixtures.Categories)))

	srv := server.New(server.Config{
		Name:     "devapi",
		Port:     cfg.DevAPI.Port,
		AllowAll: true,
	}, logger)
	devapi.RegisterRoutes(srv.Router(), store, devapi.Options{MongoIDs: cfg.DevAPI.MongoIDs}, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down fixture API...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "fixture API starting on port %d\n", cfg.DevAPI.Port)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
	fmt.Fprintf(os.Stderr, "  Base URL: http://localhost:%d/api\n", cfg.DevAPI.Port)
	return srv.Start()
}
