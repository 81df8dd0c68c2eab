package repositories

import (
	"gorm.io/gorm"

	"inkwell/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Save(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetAll() ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Save(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").Preload("Post").First(&comment, id).Error
	return &comment, err
}

// GetAll returns every comment regardless of visibility, newest first, for
// the admin moderation table.
func (r *commentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Preload("Post").
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}
