package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkboard-dev/talkboard/internal/domain"
)

// fixture: user 1 owns threads 10, 11. Thread 10 holds posts 100 (by user 1)
// and 101 (by user 2); thread 11 holds post 102. User 1 also wrote post 103
// in thread 20, owned by user 2.
func cascadeFixture() *MockStorage {
	return &MockStorage{
		ThreadIdsByAuthorFunc: func(author domain.UserId) ([]domain.ThreadId, error) {
			if author == 1 {
				return []domain.ThreadId{10, 11}, nil
			}
			return []domain.ThreadId{20}, nil
		},
		PostIdsByThreadFunc: func(thread domain.ThreadId) ([]domain.PostId, error) {
			switch thread {
			case 10:
				return []domain.PostId{100, 101}, nil
			case 11:
				return []domain.PostId{102}, nil
			case 20:
				return []domain.PostId{103, 104}, nil
			}
			return nil, nil
		},
		PostIdsByAuthorFunc: func(author domain.UserId) ([]domain.PostId, error) {
			if author == 1 {
				return []domain.PostId{100, 102, 103}, nil
			}
			return []domain.PostId{101, 104}, nil
		},
	}
}

func kinds(plan []domain.Deletion) map[domain.EntityKind][]int64 {
	out := make(map[domain.EntityKind][]int64)
	for _, d := range plan {
		out[d.Kind] = append(out[d.Kind], d.Id)
	}
	return out
}

func TestPlanUserDelete(t *testing.T) {
	plan, err := NewCascade(cascadeFixture()).PlanUserDelete(1)
	require.NoError(t, err)

	byKind := kinds(plan)
	// posts in own threads plus post 103 authored elsewhere; post 104 (by
	// user 2 in thread 20) survives
	assert.ElementsMatch(t, []int64{100, 101, 102, 103}, byKind[domain.KindPost])
	assert.ElementsMatch(t, []int64{10, 11}, byKind[domain.KindThread])
	assert.Equal(t, []int64{1}, byKind[domain.KindUser])

	// deepest-first: every post precedes every thread, user is last
	lastPost, firstThread := -1, len(plan)
	for i, d := range plan {
		switch d.Kind {
		case domain.KindPost:
			lastPost = i
		case domain.KindThread:
			if i < firstThread {
				firstThread = i
			}
		}
	}
	assert.Less(t, lastPost, firstThread, "posts must be removed before threads")
	assert.Equal(t, domain.KindUser, plan[len(plan)-1].Kind, "user must be removed last")
}

func TestPlanUserDeleteDeduplicates(t *testing.T) {
	plan, err := NewCascade(cascadeFixture()).PlanUserDelete(1)
	require.NoError(t, err)

	seen := make(map[domain.Deletion]int)
	for _, d := range plan {
		seen[d]++
	}
	for d, n := range seen {
		assert.Equalf(t, 1, n, "deletion %+v appears %d times", d, n)
	}
}

func TestPlanThreadDelete(t *testing.T) {
	plan, err := NewCascade(cascadeFixture()).PlanThreadDelete(10)
	require.NoError(t, err)

	// posts by any author, then the thread itself
	require.Len(t, plan, 3)
	assert.Equal(t, domain.Deletion{Kind: domain.KindPost, Id: 100}, plan[0])
	assert.Equal(t, domain.Deletion{Kind: domain.KindPost, Id: 101}, plan[1])
	assert.Equal(t, domain.Deletion{Kind: domain.KindThread, Id: 10}, plan[2])
}

func TestPlanThreadDeleteLeavesSiblings(t *testing.T) {
	plan, err := NewCascade(cascadeFixture()).PlanThreadDelete(11)
	require.NoError(t, err)

	for _, d := range plan {
		assert.NotContains(t, []int64{100, 101, 103, 104}, d.Id, "sibling threads' posts must stay")
	}
}

func TestPlanPostDelete(t *testing.T) {
	plan := NewCascade(&MockStorage{}).PlanPostDelete(100)
	assert.Equal(t, []domain.Deletion{{Kind: domain.KindPost, Id: 100}}, plan)
}

func TestPlanUserDeletePropagatesError(t *testing.T) {
	storage := &MockStorage{
		ThreadIdsByAuthorFunc: func(author domain.UserId) ([]domain.ThreadId, error) {
			return nil, assert.AnError
		},
	}
	_, err := NewCascade(storage).PlanUserDelete(1)
	assert.ErrorIs(t, err, assert.AnError)
}
