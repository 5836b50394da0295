package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/talkboard-dev/talkboard/internal/api"
	"github.com/talkboard-dev/talkboard/internal/domain"
	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

// CreatePost replies to a thread. Replying to someone else's thread is
// fine; the reply belongs to its author.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
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

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.PostCreationData{
		Text:   body.Text,
		Author: user.Id,
		Thread: domain.ThreadId(threadId),
	}

	postId, err := h.post.Create(creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: postId})
}

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	posts, err := h.post.List(limit, offset)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.PostListResponse{Posts: make([]api.PostResponse, 0, len(posts))}
	for _, post := range posts {
		response.Posts = append(response.Posts, api.NewPostResponse(post))
	}
	writeJSON(w, http.StatusOK, response)
}

// GetThreadPosts lists a thread's posts, oldest first.
func (h *Handler) GetThreadPosts(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := h.post.ListByThread(domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.PostListResponse{Posts: make([]api.PostResponse, 0, len(posts))}
	for _, post := range posts {
		response.Posts = append(response.Posts, api.NewPostResponse(post))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(mux.Vars(r)["post"], "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.post.Get(domain.PostId(postId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewPostResponse(post))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	postId, err := parseIntParam(mux.Vars(r)["post"], "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdatePostRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.post.Update(user, domain.PostId(postId), domain.PostUpdate{Text: body.Text}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Get(domain.PostId(postId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewPostResponse(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	postId, err := parseIntParam(mux.Vars(r)["post"], "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.post.Delete(user, domain.PostId(postId)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
