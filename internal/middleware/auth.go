package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
	"github.com/talkboard-dev/talkboard/internal/jwt"
	"github.com/talkboard-dev/talkboard/internal/logger"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

// UserStore is the subject lookup the auth middleware needs.
type UserStore interface {
	UserById(id domain.UserId) (domain.User, error)
}

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

var (
	errNoToken = &internal_errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized}
	// a decodable token whose subject is gone is indistinguishable from an
	// invalid one at the authorization boundary
	errSubjectGone = &internal_errors.ErrorWithStatusCode{Message: "Invalid token", StatusCode: http.StatusUnauthorized}
)

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.JwtService
	users      UserStore
}

func NewAuth(jwtService jwt.JwtService, users UserStore) *Auth {
	return &Auth{jwtService: jwtService, users: users}
}

// NeedAuth returns middleware that requires authentication
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser resolves the request's bearer token to a live principal.
// Token extraction tries the accessToken cookie first (browser clients),
// then the Authorization header (API clients).
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	claims, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := a.users.UserById(claims.Uid)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			// subject deleted after issuance
			logger.Log.Info("token subject no longer exists", "uid", claims.Uid)
			return nil, errSubjectGone
		}
		return nil, err
	}

	return &user, nil
}

// GetUserFromContext retrieves the authenticated user, nil if absent.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
