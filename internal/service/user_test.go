package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkboard-dev/talkboard/internal/domain"
	"github.com/talkboard-dev/talkboard/internal/password"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

func newUserService(storage *MockStorage) *User {
	return NewUser(storage, NewCascade(storage), &utils.UserValidator{}, 100)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	actor := &domain.User{Id: 1, Username: "alice"}
	newPass := "newpassword"

	storage := &MockStorage{
		UpdateUserFunc: func(id domain.UserId, upd domain.UserUpdate) error {
			assert.Equal(t, domain.UserId(1), id)
			require.NotNil(t, upd.Password)
			assert.NotEqual(t, "newpassword", *upd.Password, "plaintext must not reach storage")
			assert.True(t, password.Verify("newpassword", *upd.Password))
			assert.Nil(t, upd.Username)
			assert.Nil(t, upd.Email)
			return nil
		},
	}

	require.NoError(t, newUserService(storage).Update(actor, domain.UserUpdate{Password: &newPass}))
}

func TestUserUpdateValidatesFields(t *testing.T) {
	actor := &domain.User{Id: 1}
	bad := "x"

	err := newUserService(&MockStorage{}).Update(actor, domain.UserUpdate{Username: &bad})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestUserDeleteSelfCascades(t *testing.T) {
	actor := &domain.User{Id: 1, Username: "alice"}

	var applied []domain.Deletion
	storage := &MockStorage{
		UserByIdFunc: func(id domain.UserId) (domain.User, error) {
			return domain.User{Id: id, Username: "alice"}, nil
		},
		ThreadIdsByAuthorFunc: func(author domain.UserId) ([]domain.ThreadId, error) {
			return []domain.ThreadId{10}, nil
		},
		PostIdsByThreadFunc: func(thread domain.ThreadId) ([]domain.PostId, error) {
			return []domain.PostId{100, 101}, nil
		},
		PostIdsByAuthorFunc: func(author domain.UserId) ([]domain.PostId, error) {
			return []domain.PostId{100, 103}, nil // 103 lives in someone else's thread
		},
		ApplyDeletePlanFunc: func(plan []domain.Deletion) error {
			applied = plan
			return nil
		},
	}

	require.NoError(t, newUserService(storage).Delete(actor, 1))
	assert.Equal(t, []domain.Deletion{
		{Kind: domain.KindPost, Id: 100},
		{Kind: domain.KindPost, Id: 101},
		{Kind: domain.KindPost, Id: 103},
		{Kind: domain.KindThread, Id: 10},
		{Kind: domain.KindUser, Id: 1},
	}, applied)
}

func TestUserDeleteOtherForbidden(t *testing.T) {
	actor := &domain.User{Id: 2}
	storage := &MockStorage{
		ApplyDeletePlanFunc: func(plan []domain.Deletion) error {
			t.Fatal("must not cascade for a denied actor")
			return nil
		},
	}

	err := newUserService(storage).Delete(actor, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestUserDeleteMissing(t *testing.T) {
	actor := &domain.User{Id: 2}
	storage := &MockStorage{
		UserByIdFunc: func(id domain.UserId) (domain.User, error) {
			return domain.User{}, notFound("User not found")
		},
	}

	err := newUserService(storage).Delete(actor, 999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
