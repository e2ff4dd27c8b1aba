package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// CommentHandler serves the comment endpoints.
type CommentHandler struct {
	service comment.Service
}

// NewCommentHandler creates the handler.
func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /comments. The target post comes from the
// post_id field of the body.
func (h *CommentHandler) Create(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Could not validate credentials")
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dto, err := h.service.Create(c.Request.Context(), u.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// ListByPost handles GET /comments/post/:post_id.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := shared.ParseIDParam(c, "post_id")
	if err != nil {
		response.ValidationFailed(c, err)
		return
	}

	page, err := shared.ParsePagination(c)
	if err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dtos, err := h.service.ListByPost(c.Request.Context(), postID, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, dtos, &response.Meta{
		Skip:  page.Skip,
		Limit: page.Limit,
		Count: len(dtos),
	})
}

// Delete handles DELETE /comments/:id.
func (h *CommentHandler) Delete(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Could not validate credentials")
		return
	}

	id, err := shared.ParseIDParam(c, "id")
	if err != nil {
		response.ValidationFailed(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), u.ID, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps domain errors to HTTP status codes.
func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	switch {
	case errors.Is(err, comment.ErrDeleteForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, comment.ErrCommentNotFound), errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("comment handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
