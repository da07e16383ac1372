package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/smoothie-menu/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the menu page over HTTP",
	Long:  `Starts an HTTP server that renders the menu on every request. GET / returns the full host page, GET /menu only the container markup.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("allow-all") {
		cfg.Server.AllowAll, _ = cmd.Flags().GetBool("allow-all")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	page, err := loadHostPage(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Name:     "menu",
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAll,
	}, logger)
	server.RegisterMenuRoutes(srv.Router(), server.MenuRoutes{
		Loader:    newMenuLoader(cfg, logger),
		Page:      page,
		Timeout:   cfg.RenderTimeout(),
		StaticDir: cfg.StaticDir,
		Logger:    logger,
	})

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "menu server %s starting on port %d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Catalog API: %s\n", cfg.APIBaseURL)
	return srv.Start()
}
