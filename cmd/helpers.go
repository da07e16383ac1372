package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/smoothie-menu/internal/catalog"
	"github.com/ziadkadry99/smoothie-menu/internal/config"
	"github.com/ziadkadry99/smoothie-menu/internal/menu"
	"github.com/ziadkadry99/smoothie-menu/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `menu init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newMenuLoader wires the catalog client into a menu loader.
func newMenuLoader(cfg *config.Config, log *zap.Logger) *menu.Loader {
	client := catalog.NewClient(cfg.APIBaseURL, nil)
	return menu.NewLoader(client, menu.Options{
		APIBaseURL:       cfg.APIBaseURL,
		PlaceholderImage: cfg.PlaceholderImage,
		ItemLink:         cfg.ItemLink,
	}, log)
}

// loadHostPage reads the configured host page, or the built-in one.
func loadHostPage(cfg *config.Config) (*site.Page, error) {
	page, err := site.LoadPage(cfg.HostPage, cfg.ContainerID)
	if err != nil {
		return nil, fmt.Errorf("loading host page: %w", err)
	}
	return page, nil
}
