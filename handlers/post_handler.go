package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell/helper"
	"inkwell/models"
	"inkwell/services"
)

// PostHandler covers the admin side of the post lifecycle: authoring, the
// state transitions and temporary preview links.
type PostHandler struct {
	postService  services.PostService
	tokenService services.TokenService
	baseURL      string
	httpHelper   *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, tokenService services.TokenService, baseURL string, httpHelper *helper.HTTPHelper) *PostHandler {
	return &PostHandler{
		postService:  postService,
		tokenService: tokenService,
		baseURL:      baseURL,
		httpHelper:   httpHelper,
	}
}

// GetPosts lists every post regardless of state for the admin table.
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.GetAllPostsOrderedByUpdatedAt()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", posts)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.httpHelper.SendBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(req)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendCreated(c, "Your Post has been created!", post)
}

func (h *PostHandler) EditPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.httpHelper.SendBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.EditPost(id, req)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if post == nil {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	h.httpHelper.SendSuccess(c, fmt.Sprintf("Saved at %s!", time.Now().UTC().Format("15:04:05")), post)
}

// PublishPost rejects an already-published post before asking the service to
// transition; the store itself does not defend.
func (h *PostHandler) PublishPost(c *gin.Context) {
	h.transition(c, models.PostStatePublished, "Your Post has been published!",
		"Post is already published!", h.postService.PublishPost)
}

func (h *PostHandler) ArchivePost(c *gin.Context) {
	h.transition(c, models.PostStateArchived, "Your Post has been archived!",
		"Post is already archived!", h.postService.ArchivePost)
}

func (h *PostHandler) MarkPostAsDraft(c *gin.Context) {
	h.transition(c, models.PostStateDraft, "Your Post is now a draft!",
		"Post is already a draft!", h.postService.MarkPostAsDraft)
}

func (h *PostHandler) transition(c *gin.Context, target models.PostState, successMsg, noopMsg string, op func(uint) (*models.Post, error)) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPostByID(id)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if post == nil {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}
	if post.State == target {
		h.httpHelper.SendBadRequest(c, noopMsg)
		return
	}

	post, err = op(id)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, successMsg, post)
}

// CreatePreviewLink mints a time-limited link that shows the post without
// authentication, whatever its state.
func (h *PostHandler) CreatePreviewLink(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPostByID(id)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if post == nil {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	token, err := h.tokenService.Generate(post.Slug, services.TokenKindPreview)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", gin.H{
		"url": fmt.Sprintf("%s/temp-preview?preview_id=%s", h.baseURL, token),
	})
}

func (h *PostHandler) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.httpHelper.SendBadRequest(c, "Invalid post ID")
		return 0, false
	}
	return uint(id), true
}
