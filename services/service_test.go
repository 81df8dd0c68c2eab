package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inkwell/models"
)

// newTestDB opens a named in-memory database so every test starts from an
// empty schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

// fakeNotifier records the comments handed to it.
type fakeNotifier struct {
	comments []*models.Comment
}

func (f *fakeNotifier) NotifyNewComment(comment *models.Comment) {
	f.comments = append(f.comments, comment)
}
