package models

import "time"

type CommentState string

const (
	CommentStateVisible CommentState = "visible"
	CommentStateHidden  CommentState = "hidden"
)

type Comment struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	Text      string       `json:"text" gorm:"type:text;not null"`
	State     CommentState `json:"state" gorm:"default:'visible'"`
	UserID    uint         `json:"user_id" gorm:"not null"`
	User      User         `json:"user" gorm:"foreignKey:UserID"`
	PostID    uint         `json:"post_id" gorm:"not null"`
	Post      *Post        `json:"post,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt time.Time    `json:"created_at"`
}
