package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boychukmk/library/internal/domains/user"
	"github.com/boychukmk/library/internal/shared/response"
)

// UserHandler serves registration and login.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register - POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, u.ToResponse())
}

// Login - POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, token)
}
