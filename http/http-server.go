// Package http wires the back-office routes: a public login entry point
// and the guarded submission screens behind the session gate.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	jamaahhttp "github.com/samira-travel/backoffice/jamaah/http"
	appLogger "github.com/samira-travel/backoffice/logger"
	"github.com/samira-travel/backoffice/user/auth"
	userhttp "github.com/samira-travel/backoffice/user/http"
)

type HttpServer struct {
	jamaahHandler *jamaahhttp.JamaahHttpHandler
	userHandler   *userhttp.UserHttpHandler
	router        *chi.Mux
}

func NewHttpServer(
	jamaahHandler *jamaahhttp.JamaahHttpHandler,
	userHandler *userhttp.UserHttpHandler,
	jwtKey []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("backoffice", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"service": "backoffice",
		},
	})

	router.Use(httplog.RequestLogger(logger))
	router.Use(requestLoggerContext)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetSessionMiddleware(jwtKey))

	server := &HttpServer{
		jamaahHandler: jamaahHandler,
		userHandler:   userHandler,
		router:        router,
	}

	server.routes()

	return server
}

// requestLoggerContext puts a request-scoped slog logger into the
// context so domain code can log with the request id attached.
func requestLoggerContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := appLogger.WithRequestID(r.Context(), uuid.New().String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *HttpServer) Handler() http.Handler {
	return s.router
}

func (s *HttpServer) routes() {
	r := s.router

	// public: login and logout; the login handler itself turns away
	// callers that are already authenticated
	r.Post("/auth/login", s.userHandler.Login)
	r.Post("/auth/logout", s.userHandler.Logout)

	// guarded: everything staff see after the gate
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth)
		r.Get("/auth/whoami", s.userHandler.WhoAmI)
		s.jamaahHandler.RegisterRoutes(r)
	})
}
