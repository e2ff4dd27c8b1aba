package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/tag"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// PostHandler serves the post endpoints.
type PostHandler struct {
	service post.Service
}

// NewPostHandler creates the handler.
func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Could not validate credentials")
		return
	}

	var req post.CreatePostRequest
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

// List handles GET /posts.
func (h *PostHandler) List(c *gin.Context) {
	page, err := shared.ParsePagination(c)
	if err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dtos, err := h.service.List(c.Request.Context(), page)
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

// GetByID handles GET /posts/:id.
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := shared.ParseIDParam(c, "id")
	if err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Update handles PUT /posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
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

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dto, err := h.service.Update(c.Request.Context(), u.ID, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
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
func (h *PostHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	switch {
	case errors.Is(err, tag.ErrInvalidTagID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, post.ErrUpdateForbidden), errors.Is(err, post.ErrDeleteForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("post handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
