package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inkwell/models"
	"inkwell/repositories"
)

var testSecret = []byte("test-secret")

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := models.User{
		Email:    "admin@example.com",
		Username: "admin",
		Password: string(hash),
		IsAdmin:  true,
	}
	require.NoError(t, db.Create(&admin).Error)

	commenter := models.User{
		Email:    "commenter@example.com",
		Username: "commenter",
		Password: models.CommentUserPassword,
	}
	require.NoError(t, db.Create(&commenter).Error)

	return NewAuthService(repositories.NewUserRepository(db), testSecret)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	auth, err := svc.Login(models.LoginRequest{Email: "admin@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "admin", auth.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(models.LoginRequest{Email: "ghost@example.com", Password: "anything"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLoginCommentOnlyUser(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(models.LoginRequest{Email: "commenter@example.com", Password: models.CommentUserPassword})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
