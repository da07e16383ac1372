// Package menu turns catalog data into tabbed menu markup.
package menu

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/smoothie-menu/internal/catalog"
)

// Source provides the categories and items a menu is built from.
type Source interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Items(ctx context.Context, categoryID string) ([]catalog.Item, error)
}

// Options controls how items are rendered.
type Options struct {
	APIBaseURL       string // prefix for API-relative image paths
	PlaceholderImage string
	ItemLink         string
}

// Loader populates containers from a Source.
type Loader struct {
	source Source
	opts   Options
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(source Source, opts Options, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ItemLink == "" {
		opts.ItemLink = "#"
	}
	return &Loader{source: source, opts: opts, logger: logger}
}

// LoadMenu fetches the categories, installs the tab skeleton into c and
// starts one item loader per category. It does not wait for the item
// loaders; use c.Wait for that. Any failure before the skeleton is installed
// replaces the container with an error message, which is also returned.
func (l *Loader) LoadMenu(ctx context.Context, c *Container) error {
	log := l.logger.With(
		zap.String("load_id", uuid.NewString()),
		zap.String("container", c.ID()),
	)
	gen := c.begin()

	categories, err := l.source.Categories(ctx)
	if err != nil {
		log.Error("failed to load menu", zap.Error(err))
		c.showMessage(gen, menuErrorHTML)
		return err
	}

	active := make([]catalog.Category, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if !cat.Active() {
			continue
		}
		if cat.ID == "" {
			log.Warn("skipping category without an identifier", zap.String("name", cat.Name))
			continue
		}
		if seen[cat.ID] {
			log.Warn("skipping duplicate category", zap.String("category_id", cat.ID), zap.String("name", cat.Name))
			continue
		}
		seen[cat.ID] = true
		active = append(active, cat)
	}

	if len(active) == 0 {
		log.Info("no active categories")
		c.showMessage(gen, noCategoriesHTML)
		return nil
	}

	panes := make([]Pane, 0, len(active))
	for i, cat := range active {
		placeholder, err := execute("loading", cat.Name)
		if err != nil {
			log.Error("failed to load menu", zap.Error(err))
			c.showMessage(gen, menuErrorHTML)
			return err
		}
		panes = append(panes, Pane{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Selected:     i == 0,
			Content:      placeholder,
		})
	}

	if !c.install(gen, panes) {
		log.Debug("menu load superseded before install")
		return nil
	}
	log.Debug("menu skeleton installed", zap.Int("categories", len(active)))

	for _, cat := range active {
		go l.loadItems(ctx, c, gen, cat, log)
	}
	return nil
}

// LoadAndRender runs one load into c, waits up to timeout for its panes to
// settle and returns the container markup. Panes still pending when the wait
// ends render in their loading state, including when ctx hits its deadline.
// A zero timeout waits until ctx is done. Only a canceled ctx is an error.
func (l *Loader) LoadAndRender(ctx context.Context, c *Container, timeout time.Duration) (template.HTML, error) {
	// Page-level load failures are already rendered into c.
	_ = l.LoadMenu(ctx, c)

	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := c.Wait(waitCtx); err != nil && errors.Is(ctx.Err(), context.Canceled) {
		return "", ctx.Err()
	}
	return c.Render()
}

// loadItems fills one category's pane. Failures stay inside the pane.
func (l *Loader) loadItems(ctx context.Context, c *Container, gen uint64, cat catalog.Category, log *zap.Logger) {
	log = log.With(zap.String("category_id", cat.ID))

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while loading items", zap.Any("panic", r))
			c.settle(gen, cat.ID, PaneError, itemsErrorHTML)
		}
	}()

	items, err := l.source.Items(ctx, cat.ID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug("item load canceled", zap.Error(err))
		} else {
			log.Error("failed to load items", zap.Error(err))
		}
		c.settle(gen, cat.ID, PaneError, itemsErrorHTML)
		return
	}

	if len(items) == 0 {
		c.settle(gen, cat.ID, PaneEmpty, noItemsHTML)
		return
	}

	content, err := l.RenderItems(items)
	if err != nil {
		log.Error("failed to render items", zap.Error(err))
		c.settle(gen, cat.ID, PaneError, itemsErrorHTML)
		return
	}

	c.settle(gen, cat.ID, PanePopulated, content)
	log.Debug("pane populated", zap.Int("items", len(items)))
}

// RenderItems lays items out in paired columns.
func (l *Loader) RenderItems(items []catalog.Item) (template.HTML, error) {
	groups := PairItems(items)
	views := make([][]itemView, len(groups))
	for i, group := range groups {
		views[i] = make([]itemView, len(group))
		for j, it := range group {
			views[i][j] = itemView{
				Name:        it.Name,
				Description: Description(it),
				ImageURL:    ImageURL(l.opts.APIBaseURL, l.opts.PlaceholderImage, it.Image),
				Link:        l.opts.ItemLink,
				Price:       FormatPrice(it.Price),
			}
		}
	}

	out, err := execute("groups", views)
	if err != nil {
		return "", fmt.Errorf("rendering %d items: %w", len(items), err)
	}
	return out, nil
}
