package service

import (
	"github.com/talkboard-dev/talkboard/internal/domain"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

type PostService interface {
	Create(creation domain.PostCreationData) (domain.PostId, error)
	Get(id domain.PostId) (domain.Post, error)
	List(limit, offset int) ([]domain.Post, error)
	ListByThread(thread domain.ThreadId) ([]domain.Post, error)
	Update(actor *domain.User, id domain.PostId, upd domain.PostUpdate) error
	Delete(actor *domain.User, id domain.PostId) error
}

type Post struct {
	storage   PostStorage
	cascade   *Cascade
	validator PostValidator
	pageSize  int
}

type PostStorage interface {
	CreatePost(creation domain.PostCreationData) (domain.PostId, error)
	GetPost(id domain.PostId) (domain.Post, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	Posts(limit, offset int) ([]domain.Post, error)
	PostsByThread(thread domain.ThreadId) ([]domain.Post, error)
	UpdatePost(id domain.PostId, upd domain.PostUpdate) error
	ApplyDeletePlan(plan []domain.Deletion) error
}

type PostValidator interface {
	Text(text string) error
}

func NewPost(storage PostStorage, cascade *Cascade, validator PostValidator, pageSize int) *Post {
	return &Post{storage, cascade, validator, pageSize}
}

// Create replies to an existing thread. Anyone may reply to any thread;
// the parent must exist, and the reply's author is the acting principal.
func (p *Post) Create(creation domain.PostCreationData) (domain.PostId, error) {
	if err := p.validator.Text(creation.Text); err != nil {
		return 0, err
	}
	if _, err := p.storage.GetThread(creation.Thread); err != nil {
		return 0, err
	}
	creation.Text = utils.SanitizeText(creation.Text)

	return p.storage.CreatePost(creation)
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	return p.storage.GetPost(id)
}

func (p *Post) List(limit, offset int) ([]domain.Post, error) {
	return p.storage.Posts(clampPage(limit, p.pageSize), max(offset, 0))
}

// ListByThread returns every post of a thread, oldest first. A missing
// thread is an error rather than an empty page.
func (p *Post) ListByThread(thread domain.ThreadId) ([]domain.Post, error) {
	if _, err := p.storage.GetThread(thread); err != nil {
		return nil, err
	}
	return p.storage.PostsByThread(thread)
}

// Update edits a post. Only the post's own author may edit it; the parent
// thread's owner gets no say.
func (p *Post) Update(actor *domain.User, id domain.PostId, upd domain.PostUpdate) error {
	post, err := p.storage.GetPost(id)
	if err != nil {
		return err
	}
	if err := RequireOwner(actor, &post); err != nil {
		return err
	}

	if upd.Text != nil {
		if err := p.validator.Text(*upd.Text); err != nil {
			return err
		}
		sanitized := utils.SanitizeText(*upd.Text)
		upd.Text = &sanitized
	}

	return p.storage.UpdatePost(id, upd)
}

func (p *Post) Delete(actor *domain.User, id domain.PostId) error {
	post, err := p.storage.GetPost(id)
	if err != nil {
		return err
	}
	if err := RequireOwner(actor, &post); err != nil {
		return err
	}

	return p.storage.ApplyDeletePlan(p.cascade.PlanPostDelete(id))
}
