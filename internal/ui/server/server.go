// Package server serves the bakery page, its stylesheet and the wasm bundle
// that binds the interactive controls.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Its-donkey/sweet-treats/internal/ui/page"
	"github.com/Its-donkey/sweet-treats/logging"
)

const (
	category        = "http"
	shutdownTimeout = 5 * time.Second
)

// Options configures the page server.
type Options struct {
	Listen          string
	AssetsDir       string
	SiteName        string
	SiteDescription string
	Logger          *logging.Logger
}

type server struct {
	assetsDir string
	data      page.Data
	logger    *logging.Logger
}

func applyDefaults(opts Options) Options {
	if strings.TrimSpace(opts.Listen) == "" {
		opts.Listen = "127.0.0.1:8880"
	}
	if strings.TrimSpace(opts.AssetsDir) == "" {
		opts.AssetsDir = "web"
	}
	return opts
}

// New builds the page handler, wrapped in request logging.
func New(opts Options) (http.Handler, error) {
	opts = applyDefaults(opts)
	assetsPath, err := filepath.Abs(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets dir: %w", err)
	}

	data := page.DefaultData()
	if name := strings.TrimSpace(opts.SiteName); name != "" {
		data.SiteName = name
	}
	if desc := strings.TrimSpace(opts.SiteDescription); desc != "" {
		data.Description = desc
	}

	srv := &server{assetsDir: assetsPath, data: data, logger: opts.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleHome)
	mux.HandleFunc("/styles.css", srv.handleStyles)
	mux.Handle("/wasm_exec.js", srv.assetHandler("wasm_exec.js", "application/javascript"))
	mux.Handle("/main.wasm", srv.assetHandler("main.wasm", "application/wasm"))
	mux.HandleFunc("/healthz", srv.handleHealth)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return logging.NewHTTPLogger(opts.Logger).Middleware(mux), nil
}

// Run listens on opts.Listen until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts = applyDefaults(opts)
	ln, err := net.Listen("tcp", opts.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", opts.Listen, err)
	}
	return Serve(ctx, ln, opts)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// It returns ctx.Err() after a clean shutdown.
func Serve(ctx context.Context, ln net.Listener, opts Options) error {
	handler, err := New(opts)
	if err != nil {
		_ = ln.Close()
		return err
	}
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	opts.Logger.Info("general", "serving bakery page", map[string]any{
		"addr":   ln.Addr().String(),
		"assets": opts.AssetsDir,
	})

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		opts.Logger.Info("general", "server stopped", nil)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowGet(w, r) {
		return
	}
	data := s.data
	data.CurrentYear = time.Now().Year()

	var buf bytes.Buffer
	if err := page.Render(&buf, data); err != nil {
		s.logger.Error(category, "render home", err, nil)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleStyles(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(page.Styles())
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// assetHandler serves a build artifact from the assets directory. The wasm
// bundle and its loader are produced by the build, not embedded.
func (s *server) assetHandler(name, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r) {
			return
		}
		path := filepath.Join(s.assetsDir, name)
		if _, err := os.Stat(path); err != nil {
			s.logger.Warn(category, "asset not available", map[string]any{"asset": name, "path": path})
			http.NotFound(w, r)
			return
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		http.ServeFile(w, r, path)
	})
}
