package service

import (
	"github.com/talkboard-dev/talkboard/internal/domain"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

type ThreadService interface {
	Create(creation domain.ThreadCreationData) (domain.ThreadId, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	List(limit, offset int) ([]domain.Thread, error)
	Update(actor *domain.User, id domain.ThreadId, upd domain.ThreadUpdate) error
	Delete(actor *domain.User, id domain.ThreadId) error
}

type Thread struct {
	storage   ThreadStorage
	cascade   *Cascade
	validator ThreadValidator
	pageSize  int
}

type ThreadStorage interface {
	CreateThread(creation domain.ThreadCreationData) (domain.ThreadId, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	Threads(limit, offset int) ([]domain.Thread, error)
	UpdateThread(id domain.ThreadId, upd domain.ThreadUpdate) error
	ApplyDeletePlan(plan []domain.Deletion) error
}

type ThreadValidator interface {
	Title(title string) error
	Content(text string) error
}

func NewThread(storage ThreadStorage, cascade *Cascade, validator ThreadValidator, pageSize int) *Thread {
	return &Thread{storage, cascade, validator, pageSize}
}

// Create stores a new thread. The author comes from the authenticated
// principal; any client-supplied owner never reaches this layer.
func (t *Thread) Create(creation domain.ThreadCreationData) (domain.ThreadId, error) {
	if err := t.validator.Title(creation.Title); err != nil {
		return 0, err
	}
	if err := t.validator.Content(creation.Content); err != nil {
		return 0, err
	}
	creation.Title = utils.SanitizeText(creation.Title)
	creation.Content = utils.SanitizeText(creation.Content)

	return t.storage.CreateThread(creation)
}

func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	return t.storage.GetThread(id)
}

func (t *Thread) List(limit, offset int) ([]domain.Thread, error) {
	return t.storage.Threads(clampPage(limit, t.pageSize), max(offset, 0))
}

func (t *Thread) Update(actor *domain.User, id domain.ThreadId, upd domain.ThreadUpdate) error {
	// existence before ownership
	thread, err := t.storage.GetThread(id)
	if err != nil {
		return err
	}
	if err := RequireOwner(actor, &thread); err != nil {
		return err
	}

	if upd.Title != nil {
		if err := t.validator.Title(*upd.Title); err != nil {
			return err
		}
		sanitized := utils.SanitizeText(*upd.Title)
		upd.Title = &sanitized
	}
	if upd.Content != nil {
		if err := t.validator.Content(*upd.Content); err != nil {
			return err
		}
		sanitized := utils.SanitizeText(*upd.Content)
		upd.Content = &sanitized
	}

	return t.storage.UpdateThread(id, upd)
}

// Delete removes the thread and all its posts, whoever wrote them, as a
// single transaction.
func (t *Thread) Delete(actor *domain.User, id domain.ThreadId) error {
	thread, err := t.storage.GetThread(id)
	if err != nil {
		return err
	}
	if err := RequireOwner(actor, &thread); err != nil {
		return err
	}

	plan, err := t.cascade.PlanThreadDelete(id)
	if err != nil {
		return err
	}
	return t.storage.ApplyDeletePlan(plan)
}
