package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boychukmk/library/internal/domains/author"
	"github.com/boychukmk/library/internal/shared/response"
)

// AuthorHandler serves the read-only author endpoints.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// List - GET /api/v1/authors
func (h *AuthorHandler) List(c *gin.Context) {
	var filter author.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	authors, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	out := make([]author.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}

	response.Success(c, http.StatusOK, out)
}
