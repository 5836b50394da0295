package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/talkboard-dev/talkboard/internal/api"
	"github.com/talkboard-dev/talkboard/internal/domain"
	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// owner comes from the token, never from the payload
	creation := domain.ThreadCreationData{
		Title:   body.Title,
		Content: body.Content,
		Author:  user.Id,
	}

	threadId, err := h.thread.Create(creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: threadId})
}

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	threads, err := h.thread.List(limit, offset)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadListResponse{Threads: make([]api.ThreadResponse, 0, len(threads))}
	for _, thread := range threads {
		response.Threads = append(response.Threads, api.NewThreadResponse(thread))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewThreadResponse(thread))
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	upd := domain.ThreadUpdate{Title: body.Title, Content: body.Content}
	if err := h.thread.Update(user, domain.ThreadId(threadId), upd); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Get(domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewThreadResponse(thread))
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.thread.Delete(user, domain.ThreadId(threadId)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
