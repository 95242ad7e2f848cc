package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peoplehub/internal/domain/auth"
	"peoplehub/internal/domain/employee"
	"peoplehub/internal/domain/org"
	"peoplehub/internal/platform/config"
	"peoplehub/internal/platform/db"
	"peoplehub/internal/platform/email"
	authhandler "peoplehub/internal/transport/http/handlers/auth"
	employeehandler "peoplehub/internal/transport/http/handlers/employee"
	orghandler "peoplehub/internal/transport/http/handlers/org"
	"peoplehub/internal/transport/http/middleware"
	"peoplehub/internal/wizard"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	router := NewRouter(cfg, pool)

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter wires stores, services and handlers onto a chi router.
// Split from Run so tests can assemble the tree without a listener.
func NewRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	authStore := auth.NewStore(pool)
	orgStore := org.NewStore(pool)
	employeeService := employee.NewService(employee.NewStore(pool))
	drafts := wizard.NewDrafts()
	mailer := email.New(cfg)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Production()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Session(cfg.JWTSecret, cfg.Production()))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret, mailer, cfg.BaseURL, cfg.EmailFrom, cfg.Production())
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Post("/auth/forgot-password", authHandler.HandleForgotPassword)
		r.Post("/auth/reset-password", authHandler.HandleResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/auth/me", authHandler.HandleMe)

			orghandler.NewHandler(orgStore).Routes(r)
			employeehandler.NewHandler(employeeService, drafts).Routes(r)
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return router
}

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
