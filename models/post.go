package models

import "time"

type PostState string

const (
	PostStateDraft     PostState = "draft"
	PostStatePublished PostState = "published"
	PostStateArchived  PostState = "archived"
)

// Renderer converts raw Markdown into HTML.
type Renderer interface {
	Render(source string) (string, error)
}

type Post struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Title       string     `json:"title" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"index;not null"`
	Description string     `json:"description"`
	Source      string     `json:"source" gorm:"type:text"`
	HTML        string     `json:"html" gorm:"type:text"`
	State       PostState  `json:"state" gorm:"default:'draft'"`
	PublishedAt *time.Time `json:"published_at"`
	Comments    []Comment  `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// SetSource stores the raw Markdown and synchronously recomputes HTML.
// All writes to Source go through here so the two fields never drift apart.
func (p *Post) SetSource(source string, r Renderer) error {
	html, err := r.Render(source)
	if err != nil {
		return err
	}
	p.Source = source
	p.HTML = html
	return nil
}
