package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"inkwell/models"
	"inkwell/repositories"
)

const (
	recentPostCount = 5

	// monthYearLayout is the archive grouping label, e.g. "November 2021".
	monthYearLayout = "January 2006"
)

type PostService interface {
	CreatePost(req models.PostRequest) (*models.Post, error)
	EditPost(id uint, req models.PostRequest) (*models.Post, error)
	PublishPost(id uint) (*models.Post, error)
	ArchivePost(id uint) (*models.Post, error)
	MarkPostAsDraft(id uint) (*models.Post, error)
	GetPostByID(id uint) (*models.Post, error)
	GetPostBySlug(slug string, includeComments bool) (*models.Post, []models.Comment, error)
	GetAllPublishedPosts() ([]models.Post, error)
	GetRecentPosts() ([]models.Post, error)
	GetAllPostsOrderedByUpdatedAt() ([]models.Post, error)
	SearchPosts(terms string) ([]models.Post, error)
	GetPostsByMonthYear(label string) ([]models.Post, error)
	ArchiveMonths() ([]string, error)
}

type postService struct {
	postRepo repositories.PostRepository
	renderer models.Renderer
}

func NewPostService(postRepo repositories.PostRepository, renderer models.Renderer) PostService {
	return &postService{postRepo: postRepo, renderer: renderer}
}

func (s *postService) CreatePost(req models.PostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		State:       models.PostStateDraft,
	}
	if err := post.SetSource(req.Source, s.renderer); err != nil {
		return nil, err
	}
	post.UpdatedAt = time.Now().UTC()
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost updates content fields that differ from the stored values and
// always bumps updated_at. It never touches the post state.
func (s *postService) EditPost(id uint, req models.PostRequest) (*models.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil || post == nil {
		return nil, err
	}

	if req.Title != post.Title {
		post.Title = req.Title
	}
	if req.Slug != post.Slug {
		post.Slug = req.Slug
	}
	if req.Description != post.Description {
		post.Description = req.Description
	}
	if req.Source != post.Source {
		if err := post.SetSource(req.Source, s.renderer); err != nil {
			return nil, err
		}
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// PublishPost stamps published_at and updated_at with the same instant so
// both read consistently. Rejecting an already-published post is the
// caller's job.
func (s *postService) PublishPost(id uint) (*models.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil || post == nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.State = models.PostStatePublished
	post.UpdatedAt = now
	post.PublishedAt = &now

	if err := s.postRepo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) ArchivePost(id uint) (*models.Post, error) {
	return s.transition(id, models.PostStateArchived)
}

func (s *postService) MarkPostAsDraft(id uint) (*models.Post, error) {
	return s.transition(id, models.PostStateDraft)
}

// transition moves a post out of the published state: published_at is
// cleared and updated_at bumped, all persisted as one record update.
func (s *postService) transition(id uint, state models.PostState) (*models.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil || post == nil {
		return nil, err
	}

	post.State = state
	post.UpdatedAt = time.Now().UTC()
	post.PublishedAt = nil

	if err := s.postRepo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPostByID(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPostBySlug(slug string, includeComments bool) (*models.Post, []models.Comment, error) {
	post, err := s.postRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if !includeComments {
		return post, nil, nil
	}

	comments, err := s.postRepo.GetVisibleComments(post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *postService) GetAllPublishedPosts() ([]models.Post, error) {
	return s.postRepo.GetAllPublished()
}

func (s *postService) GetRecentPosts() ([]models.Post, error) {
	return s.postRepo.GetRecent(recentPostCount)
}

func (s *postService) GetAllPostsOrderedByUpdatedAt() ([]models.Post, error) {
	return s.postRepo.GetAllOrderedByUpdatedAt()
}

func (s *postService) SearchPosts(terms string) ([]models.Post, error) {
	return s.postRepo.Search(terms)
}

// GetPostsByMonthYear matches on the formatted published_at label, the same
// string-based grouping ArchiveMonths produces.
func (s *postService) GetPostsByMonthYear(label string) ([]models.Post, error) {
	published, err := s.postRepo.GetAllPublished()
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	for _, p := range published {
		if p.PublishedAt != nil && p.PublishedAt.Format(monthYearLayout) == label {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

// ArchiveMonths returns the distinct month/year labels of published posts,
// newest first.
func (s *postService) ArchiveMonths() ([]string, error) {
	published, err := s.postRepo.GetAllPublished()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]time.Time)
	for _, p := range published {
		if p.PublishedAt == nil {
			continue
		}
		label := p.PublishedAt.Format(monthYearLayout)
		if _, ok := seen[label]; !ok {
			seen[label] = time.Date(p.PublishedAt.Year(), p.PublishedAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return seen[labels[i]].After(seen[labels[j]])
	})
	return labels, nil
}
