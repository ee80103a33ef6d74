package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"cookit/internal/feed"
)

type Config struct {
	AllowedOrigins  []string
	PageSize        int
	SimilarPageSize int
	MaxUploadBytes  int64
}

// Deps are the collaborators behind the HTTP handlers. Limiter, Recorder and
// Metrics are optional.
type Deps struct {
	Recipes  Recipes
	Accounts Accounts
	Media    Media
	Home     Home
	Feeds    *feed.Registry
	Lister   feed.Lister
	Recorder feed.Recorder
	Limiter  *RateLimiter
	Metrics  http.Handler
}

type Server struct {
	recipes  Recipes
	accounts Accounts
	media    Media
	home     Home
	feeds    *feed.Registry
	lister   feed.Lister
	recorder feed.Recorder

	cfg     Config
	logger  *slog.Logger
	handler http.Handler
}

func NewServer(deps Deps, cfg Config, logger *slog.Logger) *Server {
	if cfg.PageSize <= 0 {
		cfg.PageSize = feed.DefaultPageSize
	}
	if cfg.SimilarPageSize <= 0 {
		cfg.SimilarPageSize = feed.DefaultSimilarPageSize
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		recipes:  deps.Recipes,
		accounts: deps.Accounts,
		media:    deps.Media,
		home:     deps.Home,
		feeds:    deps.Feeds,
		lister:   deps.Lister,
		recorder: deps.Recorder,
		cfg:      cfg,
		logger:   logger.With("component", "api"),
	}

	r := mux.NewRouter()
	s.routes(r, deps.Metrics)

	var handler http.Handler = r
	if deps.Limiter != nil {
		handler = deps.Limiter.Middleware(handler)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
	})
	handler = c.Handler(handler)

	s.handler = logRequests(s.logger)(handler)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes(r *mux.Router, metrics http.Handler) {
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if metrics != nil {
		r.Handle("/metrics", metrics).Methods(http.MethodGet)
	}

	public := r.NewRoute().Subrouter()
	public.Use(s.authenticate(false))
	public.HandleFunc("/home", s.handleHome).Methods(http.MethodGet)
	public.HandleFunc("/recipes", s.handleListRecipes).Methods(http.MethodGet)
	public.HandleFunc("/recipes/{id}", s.handleGetRecipe).Methods(http.MethodGet)
	public.HandleFunc("/recipes/{id}/views", s.handleRecordView).Methods(http.MethodPost)
	public.HandleFunc("/feeds", s.handleCreateFeed).Methods(http.MethodPost)
	public.HandleFunc("/feeds/{id}", s.handleGetFeed).Methods(http.MethodGet)
	public.HandleFunc("/feeds/{id}/next", s.handleNextPage).Methods(http.MethodPost)
	public.HandleFunc("/feeds/{id}", s.handleDeleteFeed).Methods(http.MethodDelete)

	public.HandleFunc("/auth/signup", s.handleSignUp).Methods(http.MethodPost)
	public.HandleFunc("/auth/signin", s.handleSignIn).Methods(http.MethodPost)
	public.HandleFunc("/auth/anonymous", s.handleSignInAnonymously).Methods(http.MethodPost)
	public.HandleFunc("/auth/google", s.handleSignInWithGoogle).Methods(http.MethodPost)
	public.HandleFunc("/auth/apple", s.handleSignInWithApple).Methods(http.MethodPost)
	public.HandleFunc("/auth/password-reset", s.handlePasswordReset).Methods(http.MethodPost)

	private := r.NewRoute().Subrouter()
	private.Use(s.authenticate(true))
	private.HandleFunc("/recipes", s.handleCreateRecipe).Methods(http.MethodPost)

	private.HandleFunc("/me", s.handleCurrentUser).Methods(http.MethodGet)
	private.HandleFunc("/me", s.handleDeleteAccount).Methods(http.MethodDelete)
	private.HandleFunc("/me/favorites", s.handleListFavorites).Methods(http.MethodGet)
	private.HandleFunc("/me/favorites/{recipeID}", s.handleSaveRecipe).Methods(http.MethodPut)
	private.HandleFunc("/me/favorites/{recipeID}", s.handleUnsaveRecipe).Methods(http.MethodDelete)
	private.HandleFunc("/me/link/email", s.handleLinkEmail).Methods(http.MethodPost)
	private.HandleFunc("/me/link/google", s.handleLinkGoogle).Methods(http.MethodPost)
	private.HandleFunc("/me/link/apple", s.handleLinkApple).Methods(http.MethodPost)
	private.HandleFunc("/me/email", s.handleUpdateEmail).Methods(http.MethodPut)
	private.HandleFunc("/me/password", s.handleUpdatePassword).Methods(http.MethodPut)

	private.HandleFunc("/images", s.handleUploadImage).Methods(http.MethodPost)
	private.HandleFunc("/images/import", s.handleImportImage).Methods(http.MethodPost)
	private.HandleFunc("/images/{key:.+}", s.handleDeleteImage).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
