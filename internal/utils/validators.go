package utils

import (
	"net/http"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/talkboard-dev/talkboard/internal/errors"
)

// user-supplied text is stored plain; strip any embedded markup
var strictPolicy = bluemonday.StrictPolicy()

func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

type UserValidator struct{}

func (v *UserValidator) Username(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 3 || n > 32 {
		return &errors.ErrorWithStatusCode{Message: "Username must be 3-32 characters", StatusCode: http.StatusBadRequest}
	}
	if !isAlphanumeric(name) {
		return &errors.ErrorWithStatusCode{Message: "Username should contain only letters, digits or underscore", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (v *UserValidator) Email(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return &errors.ErrorWithStatusCode{Message: "Invalid email address", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (v *UserValidator) Password(password string) error {
	if len(password) < 8 {
		return &errors.ErrorWithStatusCode{Message: "Password must be at least 8 characters", StatusCode: http.StatusBadRequest}
	}
	if len(password) > 72 { // bcrypt input limit
		return &errors.ErrorWithStatusCode{Message: "Password is too long", StatusCode: http.StatusBadRequest}
	}
	return nil
}

type ThreadValidator struct {
	MaxTitleLen int
	MaxTextLen  int
}

func (v *ThreadValidator) Title(title string) error {
	if len(title) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Title is too short", StatusCode: http.StatusBadRequest}
	}
	if utf8.RuneCountInString(title) > v.MaxTitleLen {
		return &errors.ErrorWithStatusCode{Message: "Title is too long", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (v *ThreadValidator) Content(text string) error {
	if utf8.RuneCountInString(text) > v.MaxTextLen {
		return &errors.ErrorWithStatusCode{Message: "Text is too long", StatusCode: http.StatusBadRequest}
	}
	return nil
}

type PostValidator struct {
	MaxTextLen int
}

func (v *PostValidator) Text(text string) error {
	if len(text) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Text is too short", StatusCode: http.StatusBadRequest}
	}
	if utf8.RuneCountInString(text) > v.MaxTextLen {
		return &errors.ErrorWithStatusCode{Message: "Text is too long", StatusCode: http.StatusBadRequest}
	}
	return nil
}
