package models

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type PostRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Slug        string `json:"slug" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Source      string `json:"source" binding:"required"`
}

type CommentRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=1,max=30"`
	Comment  string `json:"comment" validate:"required"`
}

type SearchRequest struct {
	Search string `json:"search" form:"search" binding:"required"`
}

// AdminUser is the users-table projection for the admin suite. It never
// carries the password column.
type AdminUser struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
}
