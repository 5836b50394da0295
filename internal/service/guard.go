package service

import (
	"net/http"

	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
	"github.com/talkboard-dev/talkboard/internal/logger"
)

// Ownable is any resource that declares its owning principal.
type Ownable interface {
	OwnerId() domain.UserId
}

// RequireOwner allows the action iff the actor is the resource's own owner.
//
// Callers must fetch the resource first: a missing resource is reported as
// 404 by storage before ownership is ever compared, so a non-owner cannot
// tell "not yours" from "does not exist". The comparison always uses the
// resource's own owner field; a post reached through its thread is still
// judged by the post's author.
func RequireOwner(actor *domain.User, resource Ownable) error {
	if actor == nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized}
	}
	if resource.OwnerId() != actor.Id {
		logger.Log.Info("ownership denied", "actor", actor.Id, "owner", resource.OwnerId())
		return &internal_errors.ErrorWithStatusCode{Message: "You lack the permissions to modify this resource", StatusCode: http.StatusForbidden}
	}
	return nil
}
