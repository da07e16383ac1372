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

	"github.com/ziadkadry99/smoothie-menu/internal/menu"
	"github.com/ziadkadry99/smoothie-menu/internal/progress"
	"github.com/ziadkadry99/smoothie-menu/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the menu into a static HTML page",
	Long:  `Fetches the catalog, renders every category pane into the host page and writes {output}/index.html together with any static assets.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("output", "", "override output directory")
	renderCmd.Flags().Int("timeout", 0, "seconds to wait for category panes (overrides config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RenderTimeoutSec, _ = cmd.Flags().GetInt("timeout")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	page, err := loadHostPage(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := menu.NewContainer(page.ContainerID())
	tracker := progress.NewTracker(progress.NewReporter())
	c.OnProgress(tracker.Observe)

	start := time.Now()
	out, err := page.Build(ctx, newMenuLoader(cfg, logger), c, cfg.RenderTimeout())
	if err != nil {
		return fmt.Errorf("rendering menu: %w", err)
	}

	path, err := site.NewGenerator(cfg.OutputDir, cfg.StaticDir).Write(out)
	if err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	panes := c.Panes()
	counts := make(map[menu.PaneState]int)
	for _, p := range panes {
		counts[p.State]++
	}
	logger.Debug("menu rendered",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("panes", len(panes)))

	fmt.Printf("Menu written: %s\n", path)
	if c.Message() != "" {
		fmt.Println("  No categories rendered; the page shows a status message.")
		return nil
	}
	fmt.Printf("  %d categories: %d populated, %d empty, %d failed, %d still loading\n",
		len(panes),
		counts[menu.PanePopulated], counts[menu.PaneEmpty],
		counts[menu.PaneError], counts[menu.PaneLoading])
	return nil
}
