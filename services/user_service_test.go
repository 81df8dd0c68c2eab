package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/models"
	"inkwell/repositories"
)

func TestGetUserByEmailEmptyKey(t *testing.T) {
	svc := NewUserService(repositories.NewUserRepository(newTestDB(t)))

	user, err := svc.GetUserByEmail("")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	svc := NewUserService(repositories.NewUserRepository(newTestDB(t)))

	created, err := svc.GetOrCreateCommentUser("Someone@Example.COM", "someone")
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", created.Email)

	found, err := svc.GetUserByEmail("SOMEONE@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetOrCreateCommentUserIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	first, err := svc.GetOrCreateCommentUser("new@x.com", "newuser")
	require.NoError(t, err)
	assert.Equal(t, models.CommentUserPassword, first.Password)
	assert.False(t, first.IsAdmin)

	second, err := svc.GetOrCreateCommentUser("new@x.com", "someoneelse")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetAllUsersForAdminOmitsPasswords(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.GetOrCreateCommentUser("a@x.com", "a")
	require.NoError(t, err)
	_, err = svc.GetOrCreateCommentUser("b@x.com", "b")
	require.NoError(t, err)

	users, err := svc.GetAllUsersForAdmin()
	require.NoError(t, err)
	require.Len(t, users, 2)

	emails := []string{users[0].Email, users[1].Email}
	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com"}, emails)
	for _, u := range users {
		assert.False(t, u.IsAdmin)
	}
}
