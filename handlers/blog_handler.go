package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"

	"inkwell/helper"
	"inkwell/models"
	"inkwell/services"
)

// BlogHandler serves the public side: the published blog, comments, search,
// the month archive and temporary preview links.
type BlogHandler struct {
	postService    services.PostService
	commentService services.CommentService
	tokenService   services.TokenService
	httpHelper     *helper.HTTPHelper
}

func NewBlogHandler(postService services.PostService, commentService services.CommentService, tokenService services.TokenService, httpHelper *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{
		postService:    postService,
		commentService: commentService,
		tokenService:   tokenService,
		httpHelper:     httpHelper,
	}
}

// Home returns everything the landing page needs: published posts, the
// recent-posts sidebar and the month archive.
func (h *BlogHandler) Home(c *gin.Context) {
	posts, err := h.postService.GetAllPublishedPosts()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	recent, err := h.postService.GetRecentPosts()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	months, err := h.postService.ArchiveMonths()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", gin.H{
		"posts":   posts,
		"recent":  recent,
		"archive": months,
	})
}

// GetPost shows a published post and its visible comments.
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, comments, err := h.postService.GetPostBySlug(c.Param("slug"), true)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if post == nil || post.State != models.PostStatePublished {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	h.httpHelper.SendSuccess(c, "", gin.H{
		"post":     post,
		"comments": comments,
	})
}

// CreateComment adds a visible comment to a published post. The notification
// mail is best effort; by the time anything fails here the comment may
// already be committed.
func (h *BlogHandler) CreateComment(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.httpHelper.SendBadRequest(c, err.Error())
		return
	}
	if err := h.httpHelper.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.httpHelper.SendValidationError(c, validationErrors)
			return
		}
		h.httpHelper.SendBadRequest(c, err.Error())
		return
	}

	post, _, err := h.postService.GetPostBySlug(c.Param("slug"), false)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if post == nil || post.State != models.PostStatePublished {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	comment, err := h.commentService.CreateComment(post, req)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Sorry, something went wrong with adding your comment!")
		return
	}

	h.httpHelper.SendCreated(c, "Your comment has been added!", comment)
}

func (h *BlogHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		h.httpHelper.SendBadRequest(c, err.Error())
		return
	}

	posts, err := h.postService.SearchPosts(req.Search)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", gin.H{
		"criteria": req.Search,
		"posts":    posts,
	})
}

// PostsByMonthYear returns the archive group for a label like
// "November 2021".
func (h *BlogHandler) PostsByMonthYear(c *gin.Context) {
	label := c.Param("monthYear")

	posts, err := h.postService.GetPostsByMonthYear(label)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", gin.H{
		"criteria": label,
		"posts":    posts,
	})
}

// TempPreview resolves a signed preview link. Expired links render a
// friendly notice; forged or missing tokens are rejected outright.
func (h *BlogHandler) TempPreview(c *gin.Context) {
	token := c.Query("preview_id")
	if token == "" {
		h.httpHelper.SendUnauthorizedError(c, "No no, you're not allowed to do that...")
		return
	}

	slug, err := h.tokenService.Validate(token, services.TokenKindPreview)
	if err != nil {
		if errors.Is(err, models.ErrTokenExpired) {
			h.httpHelper.SendExpired(c, "Sorry, this link has expired!")
			return
		}
		h.httpHelper.SendUnauthorizedError(c, "No no, you're not allowed to do that...")
		return
	}

	post, _, err := h.postService.GetPostBySlug(slug, false)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if post == nil {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	h.httpHelper.SendSuccess(c, "", post)
}
