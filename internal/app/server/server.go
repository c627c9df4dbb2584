package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
	"github.com/Raymagdonal/kpi-ctb/internal/export"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/config"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/logging"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/metrics"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/storage"
	adminhandler "github.com/Raymagdonal/kpi-ctb/internal/transport/http/handlers/admin"
	authhandler "github.com/Raymagdonal/kpi-ctb/internal/transport/http/handlers/auth"
	evaluationhandler "github.com/Raymagdonal/kpi-ctb/internal/transport/http/handlers/evaluation"
	exporthandler "github.com/Raymagdonal/kpi-ctb/internal/transport/http/handlers/export"
	transferhandler "github.com/Raymagdonal/kpi-ctb/internal/transport/http/handlers/transfer"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, pg, err := openStorage(cfg)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	if pg != nil {
		defer pg.Close()
	}

	sessions, err := session.New(store, logger, cfg.SeedAdminUser, cfg.SeedAdminPassword)
	if err != nil {
		logger.Fatal("session store", zap.Error(err))
	}

	collector := metrics.New()
	exportTask := export.NewTask(cfg.ExportDir, &export.PrintRenderer{}, logger, collector)

	router := NewRouter(cfg, logger, sessions, exportTask, collector, pg)

	logger.Info("server listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Environment))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func openStorage(cfg config.Config) (storage.Store, *storage.PostgresStore, error) {
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg, nil
	}
	fs, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return fs, nil, nil
}

// NewRouter assembles the full middleware chain and API surface. It is
// split from Run so tests can drive the whole stack through httptest.
func NewRouter(cfg config.Config, logger *zap.Logger, sessions *session.Store, exportTask *export.Task, collector *metrics.Collector, pg *storage.PostgresStore) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pg != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pg.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(sessions, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			evaluationhandler.NewHandler(sessions).RegisterRoutes(r)

			pdf := &export.PDFRenderer{FontPath: cfg.ExportFontPath}
			exporthandler.NewHandler(sessions, exportTask, pdf, &export.ExcelRenderer{}).RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			adminhandler.NewHandler(sessions).RegisterRoutes(r)
			transferhandler.NewHandler(sessions).RegisterRoutes(r)
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router
}

// spaHandler serves the built frontend, falling back to index.html for
// client-side routes.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
