package repositories

import (
	"strings"

	"gorm.io/gorm"

	"inkwell/models"
)

type PostRepository interface {
	Create(post *models.Post) error
	Save(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	GetAllPublished() ([]models.Post, error)
	GetRecent(limit int) ([]models.Post, error)
	GetAllOrderedByUpdatedAt() ([]models.Post, error)
	Search(terms string) ([]models.Post, error)
	GetVisibleComments(postID uint) ([]models.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Save(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("slug = ?", slug).First(&post).Error
	return &post, err
}

func (r *postRepository) GetAllPublished() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("state = ?", models.PostStatePublished).
		Order("published_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("state = ?", models.PostStatePublished).
		Order("published_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetAllOrderedByUpdatedAt() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("updated_at desc").Find(&posts).Error
	return posts, err
}

// Search matches published posts whose source contains the terms,
// case-insensitively.
func (r *postRepository) Search(terms string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("lower(source) LIKE ? AND state = ?",
		"%"+strings.ToLower(terms)+"%", models.PostStatePublished).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetVisibleComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ? AND state = ?", postID, models.CommentStateVisible).
		Preload("User").
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}
