package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/talkboard-dev/talkboard/internal/api"
	"github.com/talkboard-dev/talkboard/internal/domain"
	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.auth.Register(body.Username, body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: id})
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	users, err := h.user.List(limit, offset)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.UserListResponse{Users: make([]api.UserResponse, 0, len(users))}
	for _, user := range users {
		response.Users = append(response.Users, api.NewUserResponse(user))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := h.user.Get(username)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewUserResponse(user))
}

// UpdateUser patches the authenticated user's own account.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor := mw.GetUserFromContext(r)
	if actor == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.UpdateUserRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	upd := domain.UserUpdate{Username: body.Username, Email: body.Email, Password: body.Password}
	if err := h.user.Update(actor, upd); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	updated, err := h.user.Get(valueOr(body.Username, actor.Username))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewUserResponse(updated))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := mw.GetUserFromContext(r)
	if actor == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userId, err := parseIntParam(mux.Vars(r)["user"], "user ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.user.Delete(actor, domain.UserId(userId)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func valueOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
