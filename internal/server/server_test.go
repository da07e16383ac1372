package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ziadkadry99/smoothie-menu/internal/catalog"
	"github.com/ziadkadry99/smoothie-menu/internal/db"
	"github.com/ziadkadry99/smoothie-menu/internal/devapi"
	"github.com/ziadkadry99/smoothie-menu/internal/menu"
	"github.com/ziadkadry99/smoothie-menu/internal/site"
)

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestCORSRestrictedByDefault(t *testing.T) {
	srv := New(Config{Port: 0}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin %q for foreign origin", got)
	}
}

func TestServeAndShutdown(t *testing.T) {
	srv := New(Config{Name: "test"}, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-done, "clean shutdown is not an error")
}

func TestShutdownBeforeServe(t *testing.T) {
	srv := New(Config{Name: "test"}, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	// A signal can arrive while the command is still starting up.
	shutdownDone := make(chan error, 1)
	go func() { shutdownDone <- srv.Shutdown(context.Background()) }()
	require.NoError(t, <-shutdownDone)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after Shutdown")
	}
}

// newDevAPI starts the fixture API the way the devapi command wires it.
func newDevAPI(t *testing.T, fixtures string) *httptest.Server {
	t.Helper()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	store := devapi.NewStore(d)
	fx, err := devapi.ParseFixtures([]byte(fixtures))
	require.NoError(t, err)
	require.NoError(t, devapi.Seed(context.Background(), store, fx))

	api := New(Config{Name: "devapi", AllowAll: true}, nil)
	devapi.RegisterRoutes(api.Router(), store, devapi.Options{MongoIDs: true}, nil)

	ts := httptest.NewServer(api.Router())
	t.Cleanup(ts.Close)
	return ts
}

const testFixtures = `
categories:
  - id: "1"
    name: Fruity
    is_active: true
    smoothies:
      - id: "a"
        name: Mango <Tango>
        price: 6.5
      - id: "b"
        name: Berry
  - id: "2"
    name: Green
  - id: "3"
    name: Retired
    is_active: false
`

func newMenuServer(t *testing.T, apiURL, staticDir string) *httptest.Server {
	t.Helper()
	base := apiURL + "/api"
	loader := menu.NewLoader(catalog.NewClient(base, nil), menu.Options{
		APIBaseURL:       base,
		PlaceholderImage: "images/resource/menu-11.jpg",
		ItemLink:         "#",
	}, zap.NewNop())
	page, err := site.LoadPage("", "dynamic-menu-container")
	require.NoError(t, err)

	srv := New(Config{}, nil)
	RegisterMenuRoutes(srv.Router(), MenuRoutes{
		Loader:    loader,
		Page:      page,
		Timeout:   5 * time.Second,
		StaticDir: staticDir,
	})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string, http.Header) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestMenuPage(t *testing.T) {
	api := newDevAPI(t, testFixtures)
	ts := newMenuServer(t, api.URL, "")

	status, body, header := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, header.Get("Content-Type"), "text/html")

	assert.Contains(t, body, "<title>Our Menu</title>")
	assert.Contains(t, body, `id="tab-1"`)
	assert.Contains(t, body, `id="tab-2"`)
	assert.NotContains(t, body, "Retired")
	assert.Contains(t, body, "Mango &lt;Tango&gt;")
	assert.Contains(t, body, "$6.50")
	assert.Contains(t, body, menu.PriceUnavailable)
	assert.Contains(t, body, menu.MsgNoItems)
}

func TestMenuFragment(t *testing.T) {
	api := newDevAPI(t, testFixtures)
	ts := newMenuServer(t, api.URL, "")

	status, body, _ := get(t, ts.URL+"/menu")
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, "<html")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), `<div class="category-tabs`), "fragment starts with the tab list: %q", body)
}

func TestMenuPageAPIDown(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()
	ts := newMenuServer(t, api.URL, "")

	status, body, _ := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, status, "load failures render into the page")
	assert.Contains(t, body, "Please try refreshing the page.")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "logo.txt"), []byte("logo"), 0o644))

	api := newDevAPI(t, testFixtures)
	ts := newMenuServer(t, api.URL, dir)

	status, body, _ := get(t, ts.URL+"/static/images/logo.txt")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "logo", body)
}
