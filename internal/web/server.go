package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vbonduro/kitchenlist/internal/service"
)

// Options configures the outer surface of the server.
type Options struct {
	// StaticDir, when set, is served at / for the browser front-end.
	StaticDir      string
	AllowedOrigins []string
}

type Server struct {
	service *service.KitchenService
	mux     *http.ServeMux
	handler http.Handler
	opts    Options
	logger  *slog.Logger
}

func NewServer(svc *service.KitchenService, opts Options, logger *slog.Logger) *Server {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	s := &Server{
		service: svc,
		mux:     http.NewServeMux(),
		opts:    opts,
		logger:  logger,
	}
	s.registerRoutes()
	s.handler = middleware.RequestID(
		requestLogger(logger,
			middleware.Recoverer(
				corsHandler(opts.AllowedOrigins)(
					securityHeaders(s.mux)))))
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/status", s.handleStatus)

	s.mux.HandleFunc("GET /api/ingredients", s.handleListIngredients)
	s.mux.HandleFunc("POST /api/ingredients", s.handleAddIngredient)
	s.mux.HandleFunc("PUT /api/ingredients", s.handleReplaceIngredients)
	s.mux.HandleFunc("DELETE /api/ingredients", s.handleRemoveIngredient)

	s.mux.HandleFunc("GET /api/grocerieList", s.handleListGroceries)
	s.mux.HandleFunc("POST /api/grocerieList", s.handleAddGroceryItem)
	s.mux.HandleFunc("PUT /api/grocerieList", s.handleReplaceGroceries)
	s.mux.HandleFunc("PATCH /api/grocerieList", s.handleSetGroceryCompleted)
	s.mux.HandleFunc("DELETE /api/grocerieList", s.handleRemoveGroceryItem)
	s.mux.HandleFunc("DELETE /api/grocerieList/completed", s.handlePurgeCompleted)

	s.mux.HandleFunc("GET /api/handleliste", s.handleListSavedLists)
	s.mux.HandleFunc("POST /api/handleliste", s.handleSaveList)

	s.mux.HandleFunc("GET /api/recipes", s.handleListRecipes)
	s.mux.HandleFunc("POST /api/recipes", s.handleCreateRecipe)

	if s.opts.StaticDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(s.opts.StaticDir)))
	}
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
