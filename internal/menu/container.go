package menu

import (
	"context"
	"html/template"
	"sync"
)

// PaneState tracks where a pane is in its single transition out of loading.
type PaneState int

const (
	PaneLoading PaneState = iota
	PanePopulated
	PaneEmpty
	PaneError
)

func (s PaneState) String() string {
	switch s {
	case PaneLoading:
		return "loading"
	case PanePopulated:
		return "populated"
	case PaneEmpty:
		return "empty"
	case PaneError:
		return "error"
	default:
		return "unknown"
	}
}

// Pane is a snapshot of one category's region of the menu.
type Pane struct {
	CategoryID   string
	CategoryName string
	Selected     bool
	State        PaneState
	Content      template.HTML
}

// ProgressFunc is called whenever a pane settles or the container layout is
// replaced.
type ProgressFunc func(settled, total int)

// Container is the rendering target for one menu. It is safe for concurrent
// use: the category loader replaces its layout wholesale and each item
// loader writes only its own pane.
type Container struct {
	id string

	mu       sync.Mutex
	gen      uint64
	message  template.HTML
	panes    map[string]*Pane
	order    []string
	pending  int
	settled  chan struct{}
	closed   bool
	watchers []ProgressFunc
}

// NewContainer creates an empty container for the host element id.
func NewContainer(id string) *Container {
	return &Container{
		id:      id,
		panes:   make(map[string]*Pane),
		settled: make(chan struct{}),
	}
}

// ID returns the host element id this container renders into.
func (c *Container) ID() string { return c.id }

// OnProgress registers fn to be told about pane progress.
func (c *Container) OnProgress(fn ProgressFunc) {
	c.mu.Lock()
	c.watchers = append(c.watchers, fn)
	c.mu.Unlock()
}

// Wait blocks until every pane of the current load has left the loading
// state, or ctx is done.
func (c *Container) Wait(ctx context.Context) error {
	c.mu.Lock()
	ch := c.settled
	c.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Progress reports how many panes of the current load have settled.
func (c *Container) Progress() (settled, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order) - c.pending, len(c.order)
}

// Pane returns a snapshot of the pane for categoryID.
func (c *Container) Pane(categoryID string) (Pane, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.panes[categoryID]
	if !ok {
		return Pane{}, false
	}
	return *p, true
}

// Panes returns snapshots of all panes in tab order.
func (c *Container) Panes() []Pane {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Pane, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.panes[id])
	}
	return out
}

// Message returns the single page-level message, if the container shows one.
func (c *Container) Message() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Render returns the container's current inner markup.
func (c *Container) Render() (template.HTML, error) {
	c.mu.Lock()
	if c.message != "" {
		msg := c.message
		c.mu.Unlock()
		return msg, nil
	}
	view := tabsView{Panes: make([]paneView, 0, len(c.order))}
	for _, id := range c.order {
		p := c.panes[id]
		view.Panes = append(view.Panes, paneView{
			ID:       p.CategoryID,
			Name:     p.CategoryName,
			Selected: p.Selected,
			Content:  p.Content,
		})
	}
	c.mu.Unlock()

	if len(view.Panes) == 0 {
		return "", nil
	}
	return execute("tabs", view)
}

// begin starts a new load and returns its generation. Writes tagged with an
// older generation are dropped.
func (c *Container) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.markSettledLocked()
	c.settled = make(chan struct{})
	c.closed = false
	c.pending = 0
	return c.gen
}

// showMessage replaces the whole container with one message.
func (c *Container) showMessage(gen uint64, msg template.HTML) bool {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return false
	}
	c.message = msg
	c.panes = make(map[string]*Pane)
	c.order = nil
	c.pending = 0
	c.markSettledLocked()
	watchers := c.watchers
	c.mu.Unlock()

	notify(watchers, 0, 0)
	return true
}

// install replaces the whole container with the given panes, all loading.
func (c *Container) install(gen uint64, panes []Pane) bool {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return false
	}
	c.message = ""
	c.panes = make(map[string]*Pane, len(panes))
	c.order = make([]string, 0, len(panes))
	for i := range panes {
		p := panes[i]
		p.State = PaneLoading
		c.panes[p.CategoryID] = &p
		c.order = append(c.order, p.CategoryID)
	}
	c.pending = len(c.order)
	if c.pending == 0 {
		c.markSettledLocked()
	}
	total := len(c.order)
	watchers := c.watchers
	c.mu.Unlock()

	notify(watchers, 0, total)
	return true
}

// settle moves one pane out of the loading state. It is a no-op for stale
// generations, unknown panes and panes that already settled.
func (c *Container) settle(gen uint64, categoryID string, state PaneState, content template.HTML) bool {
	c.mu.Lock()
	p, ok := c.panes[categoryID]
	if gen != c.gen || !ok || p.State != PaneLoading {
		c.mu.Unlock()
		return false
	}
	p.State = state
	p.Content = content
	c.pending--
	if c.pending == 0 {
		c.markSettledLocked()
	}
	settled, total := len(c.order)-c.pending, len(c.order)
	watchers := c.watchers
	c.mu.Unlock()

	notify(watchers, settled, total)
	return true
}

func (c *Container) markSettledLocked() {
	if !c.closed {
		close(c.settled)
		c.closed = true
	}
}

func notify(watchers []ProgressFunc, settled, total int) {
	for _, fn := range watchers {
		fn(settled, total)
	}
}
