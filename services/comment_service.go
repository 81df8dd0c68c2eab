package services

import (
	"errors"

	"gorm.io/gorm"

	"inkwell/models"
	"inkwell/repositories"
)

// Notifier receives a freshly created comment for best-effort delivery.
// Implementations must not block the caller.
type Notifier interface {
	NotifyNewComment(comment *models.Comment)
}

type CommentService interface {
	CreateComment(post *models.Post, req models.CommentRequest) (*models.Comment, error)
	ToggleVisibilityState(commentID uint) (*models.Comment, error)
	GetAllComments() ([]models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	users       UserService
	notifier    Notifier
}

func NewCommentService(commentRepo repositories.CommentRepository, users UserService, notifier Notifier) CommentService {
	return &commentService{commentRepo: commentRepo, users: users, notifier: notifier}
}

// CreateComment resolves or creates the commenter user, persists a visible
// comment on the post, then hands it to the notifier. Notification is
// fire-and-forget: once the comment is committed nothing rolls it back.
func (s *commentService) CreateComment(post *models.Post, req models.CommentRequest) (*models.Comment, error) {
	user, err := s.users.GetOrCreateCommentUser(req.Email, req.Username)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   req.Comment,
		State:  models.CommentStateVisible,
		UserID: user.ID,
		User:   *user,
		PostID: post.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	comment.Post = post
	s.notifier.NotifyNewComment(comment)

	return comment, nil
}

// ToggleVisibilityState flips visible and hidden. A missing comment returns
// nil; any other stored state is data corruption and fails hard.
func (s *commentService) ToggleVisibilityState(commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	switch comment.State {
	case models.CommentStateVisible:
		comment.State = models.CommentStateHidden
	case models.CommentStateHidden:
		comment.State = models.CommentStateVisible
	default:
		return nil, models.ErrInvalidCommentState
	}

	if err := s.commentRepo.Save(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) GetAllComments() ([]models.Comment, error) {
	return s.commentRepo.GetAll()
}
