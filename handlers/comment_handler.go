package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/helper"
	"inkwell/models"
	"inkwell/services"
)

// CommentHandler covers moderation: the admin comments table, the toggle
// action, and the tokened toggle link mailed with each notification.
type CommentHandler struct {
	commentService services.CommentService
	tokenService   services.TokenService
	httpHelper     *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, tokenService services.TokenService, httpHelper *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		tokenService:   tokenService,
		httpHelper:     httpHelper,
	}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetAllComments()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", comments)
}

func (h *CommentHandler) ToggleVisibility(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.httpHelper.SendBadRequest(c, "Invalid comment ID")
		return
	}

	h.toggle(c, uint(id))
}

// ToggleVisibilityByLink is reached from the moderation email; the signed
// token stands in for an admin session.
func (h *CommentHandler) ToggleVisibilityByLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.httpHelper.SendUnauthorizedError(c, "No no, you're not allowed to do that...")
		return
	}

	payload, err := h.tokenService.Validate(token, services.TokenKindCommentToggle)
	if err != nil {
		if errors.Is(err, models.ErrTokenExpired) {
			h.httpHelper.SendExpired(c, "Sorry, this link has expired!")
			return
		}
		h.httpHelper.SendUnauthorizedError(c, "No no, you're not allowed to do that...")
		return
	}

	id, err := strconv.ParseUint(payload, 10, 32)
	if err != nil {
		h.httpHelper.SendUnauthorizedError(c, "No no, you're not allowed to do that...")
		return
	}

	h.toggle(c, uint(id))
}

func (h *CommentHandler) toggle(c *gin.Context, id uint) {
	comment, err := h.commentService.ToggleVisibilityState(id)
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if comment == nil {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	h.httpHelper.SendSuccess(c, "Comment visibility state updated!", comment)
}
