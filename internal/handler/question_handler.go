package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
)

// QuestionHandler handles the admin question bank: CRUD, lifecycle
// transitions and CSV import.
type QuestionHandler struct {
	questionService *service.QuestionService
	importService   *service.ImportService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, importService *service.ImportService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, importService: importService}
}

func failQuestion(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrQuestionNotDraft):
		response.Fail(c, http.StatusConflict, response.ErrQuestionNotDraft)
	case errors.Is(err, service.ErrBadStatusChange):
		response.Fail(c, http.StatusConflict, response.ErrActionForbidden)
	case errors.Is(err, service.ErrOptionsInvalid):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// ListByTopic godoc
// GET /api/v1/admin/topics/:id/questions
// Lists questions in a topic, filterable by status and prompt search.
func (h *QuestionHandler) ListByTopic(c *gin.Context) {
	topicID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, perPage := parsePagination(c)

	questions, total, err := h.questionService.ListByTopic(
		c.Request.Context(), topicID, c.Query("status"), c.Query("search"), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"questions": questions}, newPagination(page, perPage, total))
}

// Get godoc
// GET /api/v1/admin/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		failQuestion(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Create godoc
// POST /api/v1/admin/topics/:id/questions
// Creates a draft question in the topic.
func (h *QuestionHandler) Create(c *gin.Context) {
	topicID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), topicID, &req)
	if err != nil {
		failQuestion(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// Update godoc
// PUT /api/v1/admin/questions/:id
// Edits a draft question. Published content is frozen.
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failQuestion(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Publish godoc
// POST /api/v1/admin/questions/:id/publish
func (h *QuestionHandler) Publish(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.Publish(c.Request.Context(), id)
	if err != nil {
		failQuestion(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Archive godoc
// POST /api/v1/admin/questions/:id/archive
func (h *QuestionHandler) Archive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.Archive(c.Request.Context(), id)
	if err != nil {
		failQuestion(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Delete godoc
// DELETE /api/v1/admin/questions/:id
// Deletes a draft question.
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		failQuestion(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "question deleted successfully"})
}

// Import godoc
// POST /api/v1/admin/topics/:id/questions/import
// Accepts a CSV upload and inserts the valid rows as drafts. Pass
// ?dry_run=true to validate without writing.
func (h *QuestionHandler) Import(c *gin.Context) {
	topicID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	dryRun := c.Query("dry_run") == "true"
	report, err := h.importService.Import(c.Request.Context(), topicID, file, dryRun)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImportBadHeader):
			response.Fail(c, http.StatusBadRequest, response.ErrImportInvalid)
		case errors.Is(err, service.ErrImportEmpty):
			response.Fail(c, http.StatusBadRequest, response.ErrImportEmpty)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report})
}

// ImportTemplate godoc
// GET /api/v1/admin/questions/import-template
// Downloads the CSV header row editors fill in offline.
func (h *QuestionHandler) ImportTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="question_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(h.importService.Template()))
}
