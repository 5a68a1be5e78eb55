package server

import (
	"context"
	"net/http"
	"time"

	"samko/internal/prices"
	"samko/internal/store"
	"samko/internal/worker"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Deps are the collaborators the API exposes. Imports may be nil, which disables /api/blog/imports.
type Deps struct {
	Posts      store.PostStore
	Categories *store.Categories
	Prices     *prices.Cache
	Imports    worker.Queue
	Logger     *zap.Logger

	WriteRPS   float64
	WriteBurst int
}

type Server struct {
	posts      store.PostStore
	categories *store.Categories
	prices     *prices.Cache
	imports    worker.Queue
	limiter    *writeLimiter
	logger     *zap.Logger
	router     *mux.Router
	server     *http.Server
}

func NewServer(d Deps) *Server {
	s := &Server{
		posts:      d.Posts,
		categories: d.Categories,
		prices:     d.Prices,
		imports:    d.Imports,
		limiter:    newWriteLimiter(d.WriteRPS, d.WriteBurst),
		logger:     d.Logger,
		router:     mux.NewRouter(),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/blog/posts", s.handleListPosts).Methods("GET")
	api.Handle("/blog/posts", s.limitWrites(s.handleCreatePost)).Methods("POST")
	api.HandleFunc("/blog/posts/{id}", s.handleGetPost).Methods("GET")
	api.Handle("/blog/posts/{id}", s.limitWrites(s.handleUpdatePost)).Methods("PUT")
	api.Handle("/blog/posts/{id}", s.limitWrites(s.handleDeletePost)).Methods("DELETE")
	api.HandleFunc("/blog/categories", s.handleListCategories).Methods("GET")
	api.Handle("/blog/imports", s.limitWrites(s.handleImport)).Methods("POST")
	api.HandleFunc("/oil-prices", s.handleOilPrices).Methods("GET")
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start launches the HTTP server
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("Web server listening", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
