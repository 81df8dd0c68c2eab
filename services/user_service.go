package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"inkwell/models"
	"inkwell/repositories"
)

type UserService interface {
	GetUserByEmail(email string) (*models.User, error)
	GetOrCreateCommentUser(email, username string) (*models.User, error)
	GetAllUsersForAdmin() ([]models.AdminUser, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetUserByEmail returns nil for an empty or unknown email; the store is
// never queried with an empty key.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, nil
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetOrCreateCommentUser resolves the commenter identity, creating a
// non-admin user with the placeholder password on first contact. This is the
// one path where unauthenticated requests create persistent records.
func (s *userService) GetOrCreateCommentUser(email, username string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &models.User{
		Email:    strings.ToLower(email),
		Username: username,
		Password: models.CommentUserPassword,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsersForAdmin() ([]models.AdminUser, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	admin := make([]models.AdminUser, 0, len(users))
	for _, u := range users {
		admin = append(admin, models.AdminUser{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			Email:     u.Email,
			Username:  u.Username,
			IsAdmin:   u.IsAdmin,
		})
	}
	return admin, nil
}
