package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
)

type ExamBoardHandler struct {
	boardService *service.ExamBoardService
}

func NewExamBoardHandler(boardService *service.ExamBoardService) *ExamBoardHandler {
	return &ExamBoardHandler{boardService: boardService}
}

// GetAll godoc
// GET /api/v1/admin/exam-boards
func (h *ExamBoardHandler) GetAll(c *gin.Context) {
	boards, err := h.boardService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if boards == nil {
		boards = []model.ExamBoard{}
	}

	response.Success(c, http.StatusOK, gin.H{"exam_boards": boards})
}

// Create godoc
// POST /api/v1/admin/exam-boards
func (h *ExamBoardHandler) Create(c *gin.Context) {
	var req model.CreateExamBoardRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	board := &model.ExamBoard{Code: req.Code, Name: req.Name}
	if err := h.boardService.Create(c.Request.Context(), board); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"exam_board": board})
}

// Update godoc
// PUT /api/v1/admin/exam-boards/:id
func (h *ExamBoardHandler) Update(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateExamBoardRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	board := &model.ExamBoard{ID: id, Code: req.Code, Name: req.Name}
	if err := h.boardService.Update(c.Request.Context(), board); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exam_board": board})
}

// Delete godoc
// DELETE /api/v1/admin/exam-boards/:id
func (h *ExamBoardHandler) Delete(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "exam board deleted successfully"})
}
