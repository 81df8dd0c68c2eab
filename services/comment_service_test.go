package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inkwell/models"
	"inkwell/repositories"
)

func newCommentFixture(t *testing.T) (CommentService, *fakeNotifier, *gorm.DB, *models.Post) {
	t.Helper()
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewCommentService(
		repositories.NewCommentRepository(db),
		NewUserService(repositories.NewUserRepository(db)),
		notifier,
	)

	post := &models.Post{Title: "A Post", Slug: "a-post", State: models.PostStatePublished}
	require.NoError(t, db.Create(post).Error)
	return svc, notifier, db, post
}

func TestCreateCommentCreatesCommenterUser(t *testing.T) {
	svc, notifier, db, post := newCommentFixture(t)

	comment, err := svc.CreateComment(post, models.CommentRequest{
		Email:    "new@x.com",
		Username: "newuser",
		Comment:  "This is a comment!",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CommentStateVisible, comment.State)
	assert.Equal(t, "This is a comment!", comment.Text)

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@x.com").First(&user).Error)
	assert.Equal(t, models.CommentUserPassword, user.Password)
	assert.False(t, user.IsAdmin)

	require.Len(t, notifier.comments, 1)
	assert.Equal(t, comment.ID, notifier.comments[0].ID)
}

func TestCreateCommentReusesExistingUser(t *testing.T) {
	svc, _, db, post := newCommentFixture(t)

	req := models.CommentRequest{Email: "new@x.com", Username: "newuser", Comment: "one"}
	first, err := svc.CreateComment(post, req)
	require.NoError(t, err)

	req.Comment = "two"
	second, err := svc.CreateComment(post, req)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestToggleVisibilityStateIsInvolution(t *testing.T) {
	svc, _, _, post := newCommentFixture(t)

	comment, err := svc.CreateComment(post, models.CommentRequest{
		Email:    "new@x.com",
		Username: "newuser",
		Comment:  "toggle me",
	})
	require.NoError(t, err)

	hidden, err := svc.ToggleVisibilityState(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommentStateHidden, hidden.State)

	visible, err := svc.ToggleVisibilityState(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommentStateVisible, visible.State)
}

func TestToggleVisibilityStateNotFound(t *testing.T) {
	svc, _, _, _ := newCommentFixture(t)

	comment, err := svc.ToggleVisibilityState(12345)
	require.NoError(t, err)
	assert.Nil(t, comment)
}

func TestToggleVisibilityStateCorruptState(t *testing.T) {
	svc, _, db, post := newCommentFixture(t)

	comment, err := svc.CreateComment(post, models.CommentRequest{
		Email:    "new@x.com",
		Username: "newuser",
		Comment:  "corrupt me",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("state", "garbage").Error)

	_, err = svc.ToggleVisibilityState(comment.ID)
	assert.ErrorIs(t, err, models.ErrInvalidCommentState)
}
