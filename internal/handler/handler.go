package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/talkboard-dev/talkboard/internal/config"
	"github.com/talkboard-dev/talkboard/internal/logger"
	"github.com/talkboard-dev/talkboard/internal/service"
)

// HealthChecker is what the readiness probe needs from storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	user   service.UserService
	thread service.ThreadService
	post   service.PostService
	cfg    *config.Config
	health HealthChecker
}

func New(auth service.AuthService, user service.UserService, thread service.ThreadService, post service.PostService, cfg *config.Config, health HealthChecker) *Handler {
	return &Handler{auth, user, thread, post, cfg, health}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
