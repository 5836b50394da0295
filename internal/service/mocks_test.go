package service

import (
	"net/http"

	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
)

// MockStorage implements every storage interface the services consume,
// mirroring the single pg.Storage that backs them in production.
type MockStorage struct {
	SaveUserFunc         func(user domain.User) (domain.UserId, error)
	UserByIdFunc         func(id domain.UserId) (domain.User, error)
	UserByUsernameFunc   func(username domain.Username) (domain.User, error)
	UsersFunc            func(limit, offset int) ([]domain.User, error)
	UpdateUserFunc       func(id domain.UserId, upd domain.UserUpdate) error
	CreateThreadFunc     func(creation domain.ThreadCreationData) (domain.ThreadId, error)
	GetThreadFunc        func(id domain.ThreadId) (domain.Thread, error)
	ThreadsFunc          func(limit, offset int) ([]domain.Thread, error)
	UpdateThreadFunc     func(id domain.ThreadId, upd domain.ThreadUpdate) error
	CreatePostFunc       func(creation domain.PostCreationData) (domain.PostId, error)
	GetPostFunc          func(id domain.PostId) (domain.Post, error)
	PostsFunc            func(limit, offset int) ([]domain.Post, error)
	PostsByThreadFunc    func(thread domain.ThreadId) ([]domain.Post, error)
	UpdatePostFunc       func(id domain.PostId, upd domain.PostUpdate) error
	ThreadIdsByAuthorFunc func(author domain.UserId) ([]domain.ThreadId, error)
	PostIdsByThreadFunc  func(thread domain.ThreadId) ([]domain.PostId, error)
	PostIdsByAuthorFunc  func(author domain.UserId) ([]domain.PostId, error)
	ApplyDeletePlanFunc  func(plan []domain.Deletion) error
}

func notFound(msg string) error {
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotFound}
}

func (m *MockStorage) SaveUser(user domain.User) (domain.UserId, error) {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(user)
	}
	return 1, nil
}

func (m *MockStorage) UserById(id domain.UserId) (domain.User, error) {
	if m.UserByIdFunc != nil {
		return m.UserByIdFunc(id)
	}
	return domain.User{Id: id, Username: "alice"}, nil
}

func (m *MockStorage) UserByUsername(username domain.Username) (domain.User, error) {
	if m.UserByUsernameFunc != nil {
		return m.UserByUsernameFunc(username)
	}
	return domain.User{}, notFound("User not found")
}

func (m *MockStorage) Users(limit, offset int) ([]domain.User, error) {
	if m.UsersFunc != nil {
		return m.UsersFunc(limit, offset)
	}
	return nil, nil
}

func (m *MockStorage) UpdateUser(id domain.UserId, upd domain.UserUpdate) error {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(id, upd)
	}
	return nil
}

func (m *MockStorage) CreateThread(creation domain.ThreadCreationData) (domain.ThreadId, error) {
	if m.CreateThreadFunc != nil {
		return m.CreateThreadFunc(creation)
	}
	return 1, nil
}

func (m *MockStorage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	if m.GetThreadFunc != nil {
		return m.GetThreadFunc(id)
	}
	return domain.Thread{}, notFound("Thread not found")
}

func (m *MockStorage) Threads(limit, offset int) ([]domain.Thread, error) {
	if m.ThreadsFunc != nil {
		return m.ThreadsFunc(limit, offset)
	}
	return nil, nil
}

func (m *MockStorage) UpdateThread(id domain.ThreadId, upd domain.ThreadUpdate) error {
	if m.UpdateThreadFunc != nil {
		return m.UpdateThreadFunc(id, upd)
	}
	return nil
}

func (m *MockStorage) CreatePost(creation domain.PostCreationData) (domain.PostId, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(creation)
	}
	return 1, nil
}

func (m *MockStorage) GetPost(id domain.PostId) (domain.Post, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(id)
	}
	return domain.Post{}, notFound("Post not found")
}

func (m *MockStorage) Posts(limit, offset int) ([]domain.Post, error) {
	if m.PostsFunc != nil {
		return m.PostsFunc(limit, offset)
	}
	return nil, nil
}

func (m *MockStorage) PostsByThread(thread domain.ThreadId) ([]domain.Post, error) {
	if m.PostsByThreadFunc != nil {
		return m.PostsByThreadFunc(thread)
	}
	return nil, nil
}

func (m *MockStorage) UpdatePost(id domain.PostId, upd domain.PostUpdate) error {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(id, upd)
	}
	return nil
}

func (m *MockStorage) ThreadIdsByAuthor(author domain.UserId) ([]domain.ThreadId, error) {
	if m.ThreadIdsByAuthorFunc != nil {
		return m.ThreadIdsByAuthorFunc(author)
	}
	return nil, nil
}

func (m *MockStorage) PostIdsByThread(thread domain.ThreadId) ([]domain.PostId, error) {
	if m.PostIdsByThreadFunc != nil {
		return m.PostIdsByThreadFunc(thread)
	}
	return nil, nil
}

func (m *MockStorage) PostIdsByAuthor(author domain.UserId) ([]domain.PostId, error) {
	if m.PostIdsByAuthorFunc != nil {
		return m.PostIdsByAuthorFunc(author)
	}
	return nil, nil
}

func (m *MockStorage) ApplyDeletePlan(plan []domain.Deletion) error {
	if m.ApplyDeletePlanFunc != nil {
		return m.ApplyDeletePlanFunc(plan)
	}
	return nil
}

// MockJwt lets auth tests control token minting.
type MockJwt struct {
	NewTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(user)
	}
	return "token", nil
}
