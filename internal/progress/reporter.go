package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while menu panes load.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Loading menu"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	Out   io.Writer
	total int
}

func (r *CIReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.out(), "Loading %d menu categories\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.out(), "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.out(), "Menu loaded")
}

// Tracker adapts a Reporter to pane settlement callbacks, which may arrive
// concurrently from several item loaders.
type Tracker struct {
	mu       sync.Mutex
	r        Reporter
	total    int
	started  bool
	finished bool
}

// NewTracker wraps r.
func NewTracker(r Reporter) *Tracker {
	return &Tracker{r: r}
}

// Observe records that settled of total panes are done. A change in total
// restarts the reporter for the new layout.
func (t *Tracker) Observe(settled, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if total == 0 {
		return
	}
	if !t.started || total != t.total {
		t.r.Start(total)
		t.started, t.finished, t.total = true, false, total
	}
	if settled == 0 || t.finished {
		return
	}
	t.r.Update(settled, "Loading menu")
	if settled == total {
		t.r.Finish()
		t.finished = true
	}
}

// Done reports whether every pane of the last observed layout has settled.
func (t *Tracker) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}
