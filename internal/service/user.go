package service

import (
	"github.com/talkboard-dev/talkboard/internal/domain"
	"github.com/talkboard-dev/talkboard/internal/logger"
	"github.com/talkboard-dev/talkboard/internal/password"
)

type UserService interface {
	Get(username domain.Username) (domain.User, error)
	List(limit, offset int) ([]domain.User, error)
	Update(actor *domain.User, upd domain.UserUpdate) error
	Delete(actor *domain.User, id domain.UserId) error
}

type User struct {
	storage   UserStorage
	cascade   *Cascade
	validator UserValidator
	pageSize  int
}

type UserStorage interface {
	UserById(id domain.UserId) (domain.User, error)
	UserByUsername(username domain.Username) (domain.User, error)
	Users(limit, offset int) ([]domain.User, error)
	// UpdateUser applies only the fields that are set; Password must
	// already be a hash by the time it gets here.
	UpdateUser(id domain.UserId, upd domain.UserUpdate) error
	ApplyDeletePlan(plan []domain.Deletion) error
}

func NewUser(storage UserStorage, cascade *Cascade, validator UserValidator, pageSize int) *User {
	return &User{storage, cascade, validator, pageSize}
}

func (u *User) Get(username domain.Username) (domain.User, error) {
	return u.storage.UserByUsername(username)
}

func (u *User) List(limit, offset int) ([]domain.User, error) {
	return u.storage.Users(clampPage(limit, u.pageSize), max(offset, 0))
}

// Update patches the acting user's own account field by field. A supplied
// password is re-hashed; nil fields stay as they are.
func (u *User) Update(actor *domain.User, upd domain.UserUpdate) error {
	if err := RequireOwner(actor, actor); err != nil {
		return err
	}

	if upd.Username != nil {
		if err := u.validator.Username(*upd.Username); err != nil {
			return err
		}
	}
	if upd.Email != nil {
		if err := u.validator.Email(*upd.Email); err != nil {
			return err
		}
	}
	if upd.Password != nil {
		if err := u.validator.Password(*upd.Password); err != nil {
			return err
		}
		hash, err := password.Hash(*upd.Password)
		if err != nil {
			return err
		}
		upd.Password = &hash
	}

	return u.storage.UpdateUser(actor.Id, upd)
}

// Delete removes a user and everything they own. Existence is checked
// before ownership, then the cascade plan is applied as one transaction.
func (u *User) Delete(actor *domain.User, id domain.UserId) error {
	target, err := u.storage.UserById(id)
	if err != nil {
		return err
	}
	if err := RequireOwner(actor, &target); err != nil {
		return err
	}

	plan, err := u.cascade.PlanUserDelete(id)
	if err != nil {
		return err
	}
	if err := u.storage.ApplyDeletePlan(plan); err != nil {
		return err
	}
	logger.Log.Info("user deleted with cascade", "user_id", id, "entities", len(plan))
	return nil
}

func clampPage(limit, pageSize int) int {
	if limit <= 0 || limit > pageSize {
		return pageSize
	}
	return limit
}
