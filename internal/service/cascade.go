package service

import (
	"github.com/talkboard-dev/talkboard/internal/domain"
)

// CascadeStorage enumerates dependents for cascade planning.
type CascadeStorage interface {
	ThreadIdsByAuthor(author domain.UserId) ([]domain.ThreadId, error)
	PostIdsByThread(thread domain.ThreadId) ([]domain.PostId, error)
	PostIdsByAuthor(author domain.UserId) ([]domain.PostId, error)
}

// Cascade computes deletion plans: the full, deepest-first ordered set of
// entities to remove when an owning entity goes away. It only plans;
// applying the plan atomically is storage's job (ApplyDeletePlan runs the
// whole plan in one transaction).
type Cascade struct {
	storage CascadeStorage
}

func NewCascade(storage CascadeStorage) *Cascade {
	return &Cascade{storage}
}

// PlanUserDelete removes, in order: every post in the user's threads
// (whoever wrote them), every post the user wrote in other threads, then
// the user's threads, then the user itself.
func (c *Cascade) PlanUserDelete(id domain.UserId) ([]domain.Deletion, error) {
	threads, err := c.storage.ThreadIdsByAuthor(id)
	if err != nil {
		return nil, err
	}

	var plan []domain.Deletion
	seenPosts := make(map[domain.PostId]bool)

	for _, threadId := range threads {
		posts, err := c.storage.PostIdsByThread(threadId)
		if err != nil {
			return nil, err
		}
		for _, postId := range posts {
			if !seenPosts[postId] {
				seenPosts[postId] = true
				plan = append(plan, domain.Deletion{Kind: domain.KindPost, Id: postId})
			}
		}
	}

	// posts the user authored in threads owned by others
	authored, err := c.storage.PostIdsByAuthor(id)
	if err != nil {
		return nil, err
	}
	for _, postId := range authored {
		if !seenPosts[postId] {
			seenPosts[postId] = true
			plan = append(plan, domain.Deletion{Kind: domain.KindPost, Id: postId})
		}
	}

	for _, threadId := range threads {
		plan = append(plan, domain.Deletion{Kind: domain.KindThread, Id: threadId})
	}
	plan = append(plan, domain.Deletion{Kind: domain.KindUser, Id: id})
	return plan, nil
}

// PlanThreadDelete removes the thread's posts regardless of author, then
// the thread.
func (c *Cascade) PlanThreadDelete(id domain.ThreadId) ([]domain.Deletion, error) {
	posts, err := c.storage.PostIdsByThread(id)
	if err != nil {
		return nil, err
	}

	plan := make([]domain.Deletion, 0, len(posts)+1)
	for _, postId := range posts {
		plan = append(plan, domain.Deletion{Kind: domain.KindPost, Id: postId})
	}
	plan = append(plan, domain.Deletion{Kind: domain.KindThread, Id: id})
	return plan, nil
}

// PlanPostDelete removes only the post.
func (c *Cascade) PlanPostDelete(id domain.PostId) []domain.Deletion {
	return []domain.Deletion{{Kind: domain.KindPost, Id: id}}
}
