package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/talkboard-dev/talkboard/internal/config"
	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
	mw "github.com/talkboard-dev/talkboard/internal/middleware"
)

// Function-field mocks: tests set only the calls they expect, anything
// else panics on a nil func.

type mockAuthService struct {
	register func(username domain.Username, email domain.Email, plaintext domain.Password) (domain.UserId, error)
	login    func(creds domain.Credentials) (string, error)
}

func (m *mockAuthService) Register(username domain.Username, email domain.Email, plaintext domain.Password) (domain.UserId, error) {
	return m.register(username, email, plaintext)
}
func (m *mockAuthService) Login(creds domain.Credentials) (string, error) { return m.login(creds) }

type mockUserService struct {
	get    func(username domain.Username) (domain.User, error)
	list   func(limit, offset int) ([]domain.User, error)
	update func(actor *domain.User, upd domain.UserUpdate) error
	delete func(actor *domain.User, id domain.UserId) error
}

func (m *mockUserService) Get(username domain.Username) (domain.User, error) { return m.get(username) }
func (m *mockUserService) List(limit, offset int) ([]domain.User, error)     { return m.list(limit, offset) }
func (m *mockUserService) Update(actor *domain.User, upd domain.UserUpdate) error {
	return m.update(actor, upd)
}
func (m *mockUserService) Delete(actor *domain.User, id domain.UserId) error {
	return m.delete(actor, id)
}

type mockThreadService struct {
	create func(creation domain.ThreadCreationData) (domain.ThreadId, error)
	get    func(id domain.ThreadId) (domain.Thread, error)
	list   func(limit, offset int) ([]domain.Thread, error)
	update func(actor *domain.User, id domain.ThreadId, upd domain.ThreadUpdate) error
	delete func(actor *domain.User, id domain.ThreadId) error
}

func (m *mockThreadService) Create(creation domain.ThreadCreationData) (domain.ThreadId, error) {
	return m.create(creation)
}
func (m *mockThreadService) Get(id domain.ThreadId) (domain.Thread, error) { return m.get(id) }
func (m *mockThreadService) List(limit, offset int) ([]domain.Thread, error) {
	return m.list(limit, offset)
}
func (m *mockThreadService) Update(actor *domain.User, id domain.ThreadId, upd domain.ThreadUpdate) error {
	return m.update(actor, id, upd)
}
func (m *mockThreadService) Delete(actor *domain.User, id domain.ThreadId) error {
	return m.delete(actor, id)
}

type mockPostService struct {
	create       func(creation domain.PostCreationData) (domain.PostId, error)
	get          func(id domain.PostId) (domain.Post, error)
	list         func(limit, offset int) ([]domain.Post, error)
	listByThread func(thread domain.ThreadId) ([]domain.Post, error)
	update       func(actor *domain.User, id domain.PostId, upd domain.PostUpdate) error
	delete       func(actor *domain.User, id domain.PostId) error
}

func (m *mockPostService) Create(creation domain.PostCreationData) (domain.PostId, error) {
	return m.create(creation)
}
func (m *mockPostService) Get(id domain.PostId) (domain.Post, error)     { return m.get(id) }
func (m *mockPostService) List(limit, offset int) ([]domain.Post, error) { return m.list(limit, offset) }
func (m *mockPostService) ListByThread(thread domain.ThreadId) ([]domain.Post, error) {
	return m.listByThread(thread)
}
func (m *mockPostService) Update(actor *domain.User, id domain.PostId, upd domain.PostUpdate) error {
	return m.update(actor, id, upd)
}
func (m *mockPostService) Delete(actor *domain.User, id domain.PostId) error {
	return m.delete(actor, id)
}

type mockHealth struct {
	ping func(ctx context.Context) error
}

func (m *mockHealth) Ping(ctx context.Context) error { return m.ping(ctx) }

type mocks struct {
	auth   *mockAuthService
	user   *mockUserService
	thread *mockThreadService
	post   *mockPostService
	health *mockHealth
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			JwtTTL:   time.Hour,
			PageSize: 50,
		},
	}
}

func newTestHandler() (*Handler, *mocks) {
	m := &mocks{
		auth:   &mockAuthService{},
		user:   &mockUserService{},
		thread: &mockThreadService{},
		post:   &mockPostService{},
		health: &mockHealth{},
	}
	return New(m.auth, m.user, m.thread, m.post, testConfig(), m.health), m
}

func notFound(what string) error {
	return &internal_errors.ErrorWithStatusCode{Message: what + " not found", StatusCode: http.StatusNotFound}
}

var actor = domain.User{Id: 1, Username: "alice", Email: "alice@example.com"}

// do routes the request through a mux router so mux.Vars is populated,
// optionally with an authenticated principal in the context.
func do(t *testing.T, method, target, pattern string, handlerFn http.HandlerFunc, body string, user *domain.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
	}

	r := mux.NewRouter()
	r.HandleFunc(pattern, handlerFn).Methods(method)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
