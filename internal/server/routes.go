package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/smoothie-menu/internal/menu"
	"github.com/ziadkadry99/smoothie-menu/internal/site"
)

// MenuRoutes serves the live menu. Every request runs its own load into a
// fresh container.
type MenuRoutes struct {
	Loader    *menu.Loader
	Page      *site.Page
	Timeout   time.Duration // how long to wait for panes before rendering
	StaticDir string        // optional; served under /static/
	Logger    *zap.Logger
}

// RegisterMenuRoutes mounts the page, fragment and static routes.
func RegisterMenuRoutes(r chi.Router, m MenuRoutes) {
	if m.Logger == nil {
		m.Logger = zap.NewNop()
	}
	r.Get("/", pageHandler(m))
	r.Get("/menu", fragmentHandler(m))
	if m.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(m.StaticDir)))
		r.Handle("/static/*", fs)
	}
}

func pageHandler(m MenuRoutes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := menu.NewContainer(m.Page.ContainerID())
		out, err := m.Page.Build(r.Context(), m.Loader, c, m.Timeout)
		if err != nil {
			writeBuildError(w, m.Logger, err)
			return
		}
		writeHTML(w, out)
	}
}

func fragmentHandler(m MenuRoutes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := menu.NewContainer(m.Page.ContainerID())
		markup, err := m.Loader.LoadAndRender(r.Context(), c, m.Timeout)
		if err != nil {
			writeBuildError(w, m.Logger, err)
			return
		}
		writeHTML(w, []byte(markup))
	}
}

func writeBuildError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if errors.Is(err, context.Canceled) {
		// Client went away.
		return
	}
	logger.Error("rendering menu page", zap.Error(err))
	http.Error(w, "menu unavailable", http.StatusServiceUnavailable)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
