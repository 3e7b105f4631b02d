package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"galleria/internal/assets"
	"galleria/internal/gallery"
)

// Config holds server configuration.
type Config struct {
	Port      int
	AssetsDir string // directory containing the root asset folders
	Title     string
	Exclude   []string // glob patterns skipped during the asset scan
	Watch     bool     // watch asset folders and live-reload connected browsers
	AllowAll  bool     // allow all CORS origins (dev mode)
}

// Server serves the gallery page, its static assets, and the asset files
// themselves. The asset tree is re-scanned on every page load, so the
// page always reflects the current state of the filesystem.
type Server struct {
	cfg        Config
	router     chi.Router
	reload     *reloadHub
	httpServer *http.Server
}

// New creates a Server. With cfg.Watch set, a filesystem watcher over the
// root folders is started immediately.
func New(cfg Config) (*Server, error) {
	s := &Server{cfg: cfg}

	if cfg.Watch {
		hub, err := newReloadHub(rootDirs(cfg))
		if err != nil {
			return nil, fmt.Errorf("starting watcher: %w", err)
		}
		s.reload = hub
	}

	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/style.css", s.handleCSS)
	r.Get("/script.js", s.handleJS)
	r.Get("/api/assets", s.handleAssets)

	if s.reload != nil {
		r.Get("/ws/reload", s.reload.handleWS)
	}

	// Asset files (must be registered after the fixed routes).
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.AssetsDir)))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// handleIndex scans the asset tree and renders the gallery page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	raw := assets.CollectAll(s.cfg.AssetsDir, assets.Roots, s.cfg.Exclude)
	merged := assets.Merge(raw)
	sections := gallery.BuildSections(merged, assets.Roots)

	intro, err := gallery.RenderIntro(s.cfg.AssetsDir)
	if err != nil {
		log.Printf("server: rendering intro: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := gallery.PageData{
		Title:      s.cfg.Title,
		Intro:      intro,
		Sections:   sections,
		LiveReload: s.reload != nil,
	}
	if err := gallery.Render(w, data); err != nil {
		log.Printf("server: rendering page: %v", err)
	}
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(gallery.CSS()))
}

func (s *Server) handleJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(gallery.JS()))
}

// handleAssets returns the merged asset list as JSON, in the same order
// the gallery renders it.
func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	raw := assets.CollectAll(s.cfg.AssetsDir, assets.Roots, s.cfg.Exclude)
	merged := assets.Merge(raw)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(merged); err != nil {
		log.Printf("server: encoding assets: %v", err)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("galleria serving on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and the reload watcher.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
