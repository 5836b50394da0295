// Package router wires the HTTP surface: routes, auth requirements and
// the shared middleware chain.
package router

import (
	"net/http"

	gh "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talkboard-dev/talkboard/internal/config"
	"github.com/talkboard-dev/talkboard/internal/handler"
	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/internal/middleware/metrics"
)

func New(h *handler.Handler, auth *mw.Auth, cfg *config.Config) http.Handler {
	r := mux.NewRouter()

	r.Use(mw.RequestId)
	r.Use(metrics.Middleware)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()

	// No token needed for these.
	v1.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	v1.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	v1.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	v1.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	v1.HandleFunc("/users/{username}", h.GetUser).Methods(http.MethodGet)
	v1.HandleFunc("/threads", h.GetThreads).Methods(http.MethodGet)
	v1.HandleFunc("/threads/{thread}", h.GetThread).Methods(http.MethodGet)
	v1.HandleFunc("/threads/{thread}/posts", h.GetThreadPosts).Methods(http.MethodGet)
	v1.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	v1.HandleFunc("/posts/{post}", h.GetPost).Methods(http.MethodGet)

	authed := v1.NewRoute().Subrouter()
	authed.Use(auth.NeedAuth())

	authed.HandleFunc("/users", h.UpdateUser).Methods(http.MethodPut)
	authed.HandleFunc("/users/{user}", h.DeleteUser).Methods(http.MethodDelete)
	authed.HandleFunc("/threads", h.CreateThread).Methods(http.MethodPost)
	authed.HandleFunc("/threads/{thread}", h.UpdateThread).Methods(http.MethodPut)
	authed.HandleFunc("/threads/{thread}", h.DeleteThread).Methods(http.MethodDelete)
	authed.HandleFunc("/posts/replyto/{thread}", h.CreatePost).Methods(http.MethodPost)
	authed.HandleFunc("/posts/{post}", h.UpdatePost).Methods(http.MethodPut)
	authed.HandleFunc("/posts/{post}", h.DeletePost).Methods(http.MethodDelete)

	var root http.Handler = r
	root = gh.CompressHandler(root)
	if cfg.Public.AllowedOrigin != "" {
		root = gh.CORS(
			gh.AllowedOrigins([]string{cfg.Public.AllowedOrigin}),
			gh.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			gh.AllowedHeaders([]string{"Content-Type", "Authorization"}),
			gh.AllowCredentials(),
		)(root)
	}
	return root
}
