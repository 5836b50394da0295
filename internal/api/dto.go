// Package api holds the request/response DTOs of the HTTP surface.
package api

import (
	"time"

	"github.com/talkboard-dev/talkboard/internal/domain"
)

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a partial update; absent fields stay untouched.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CreateThreadRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateThreadRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type UpdatePostRequest struct {
	Text *string `json:"text,omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	Id       domain.UserId   `json:"id"`
	Username domain.Username `json:"username"`
	Email    domain.Email    `json:"email"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{Id: user.Id, Username: user.Username, Email: user.Email}
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

type ThreadResponse struct {
	Id      domain.ThreadId   `json:"id"`
	Title   domain.ThreadTitle `json:"title"`
	Content string            `json:"content"`
	Created time.Time         `json:"created"`
	Updated time.Time         `json:"updated"`
	Author  domain.UserId     `json:"author"`
}

func NewThreadResponse(thread domain.Thread) ThreadResponse {
	return ThreadResponse{
		Id:      thread.Id,
		Title:   thread.Title,
		Content: thread.Content,
		Created: thread.Created,
		Updated: thread.Updated,
		Author:  thread.Author,
	}
}

type ThreadListResponse struct {
	Threads []ThreadResponse `json:"threads"`
}

type PostResponse struct {
	Id      domain.PostId   `json:"id"`
	Text    domain.PostText `json:"text"`
	Created time.Time       `json:"created"`
	Updated time.Time       `json:"updated"`
	Author  domain.UserId   `json:"author"`
	Thread  domain.ThreadId `json:"thread"`
}

func NewPostResponse(post domain.Post) PostResponse {
	return PostResponse{
		Id:      post.Id,
		Text:    post.Text,
		Created: post.Created,
		Updated: post.Updated,
		Author:  post.Author,
		Thread:  post.Thread,
	}
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

type CreatedResponse struct {
	Id int64 `json:"id"`
}
