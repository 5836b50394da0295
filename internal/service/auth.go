package service

import (
	"net/http"
	"strings"

	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
	"github.com/talkboard-dev/talkboard/internal/logger"
	"github.com/talkboard-dev/talkboard/internal/password"
)

type AuthService interface {
	Register(username domain.Username, email domain.Email, plaintext domain.Password) (domain.UserId, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage   AuthStorage
	jwt       Jwt
	validator UserValidator
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	UserByUsername(username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type UserValidator interface {
	Username(name string) error
	Email(email string) error
	Password(password string) error
}

func NewAuth(storage AuthStorage, jwt Jwt, validator UserValidator) *Auth {
	return &Auth{storage, jwt, validator}
}

// Register creates a new user. The plaintext is hashed before it ever
// reaches storage; uniqueness of username/email is enforced there.
func (a *Auth) Register(username domain.Username, email domain.Email, plaintext domain.Password) (domain.UserId, error) {
	email = strings.ToLower(email)

	if err := a.validator.Username(username); err != nil {
		return 0, err
	}
	if err := a.validator.Email(email); err != nil {
		return 0, err
	}
	if err := a.validator.Password(plaintext); err != nil {
		return 0, err
	}

	passHash, err := password.Hash(plaintext)
	if err != nil {
		return 0, err
	}

	id, err := a.storage.SaveUser(domain.User{Username: username, Email: email, PassHash: passHash})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Login checks if user with given credentials exists in the system and returns access token.
// Unknown username and wrong password produce the same error so callers
// can't enumerate accounts.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByUsername(creds.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			logger.Log.Info("login failed: unknown username", "username", creds.Username)
			return "", &internal_errors.ErrorWithStatusCode{
				Message:    "Invalid credentials",
				StatusCode: http.StatusUnauthorized,
			}
		}
		return "", err
	}

	if !password.Verify(creds.Password, user.PassHash) {
		logger.Log.Info("login failed: password mismatch", "user_id", user.Id)
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}
