package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/prepnaija/prepnaija-backend/internal/middleware"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
)

type AdminUserHandler struct {
	service *service.AdminUserService
}

func NewAdminUserHandler(service *service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{service: service}
}

// ListAdmins godoc
// GET /api/v1/admin/admins
func (h *AdminUserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

// CreateAdminRequest payload
type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=6"`
	RoleID   int    `json:"role_id" binding:"required"`
}

// CreateAdmin godoc
// POST /api/v1/admin/admins
func (h *AdminUserHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.service.CreateAdmin(c.Request.Context(), req.Email, req.Name, req.Password, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

// UpdateAdminRequest payload. Password is only changed when provided.
type UpdateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"omitempty,min=6"`
	RoleID   int    `json:"role_id" binding:"required"`
}

// UpdateAdmin godoc
// PUT /api/v1/admin/admins/:id
func (h *AdminUserHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.service.UpdateAdmin(c.Request.Context(), id, req.Email, req.Name, req.Password, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// DeleteAdmin godoc
// DELETE /api/v1/admin/admins/:id
// Admins cannot delete their own account.
func (h *AdminUserHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if claims != nil && claims.UserID == id {
		response.Fail(c, http.StatusForbidden, response.ErrActionForbidden)
		return
	}

	if err := h.service.DeleteAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "admin deleted successfully"})
}
