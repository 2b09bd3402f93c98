package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
)

type PassageHandler struct {
	passageService *service.PassageService
}

func NewPassageHandler(passageService *service.PassageService) *PassageHandler {
	return &PassageHandler{passageService: passageService}
}

// List godoc
// GET /api/v1/admin/passages
func (h *PassageHandler) List(c *gin.Context) {
	page, perPage := parsePagination(c)

	passages, total, err := h.passageService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if passages == nil {
		passages = []model.Passage{}
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"passages": passages}, newPagination(page, perPage, total))
}

// Get godoc
// GET /api/v1/admin/passages/:id
func (h *PassageHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	passage, err := h.passageService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"passage": passage})
}

// Create godoc
// POST /api/v1/admin/passages
func (h *PassageHandler) Create(c *gin.Context) {
	var req model.CreatePassageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	passage := &model.Passage{Title: req.Title, Body: req.Body}
	if err := h.passageService.Create(c.Request.Context(), passage); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"passage": passage})
}

// Update godoc
// PUT /api/v1/admin/passages/:id
func (h *PassageHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdatePassageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	passage := &model.Passage{ID: id, Title: req.Title, Body: req.Body}
	if err := h.passageService.Update(c.Request.Context(), passage); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"passage": passage})
}

// Delete godoc
// DELETE /api/v1/admin/passages/:id
func (h *PassageHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.passageService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "passage deleted successfully"})
}
