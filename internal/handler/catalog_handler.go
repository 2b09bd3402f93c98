package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
)

// CatalogHandler serves the public content catalog learners browse before
// starting a session.
type CatalogHandler struct {
	subjectService *service.SubjectService
	topicService   *service.TopicService
	boardService   *service.ExamBoardService
	settingService *service.SettingService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	subjectService *service.SubjectService,
	topicService *service.TopicService,
	boardService *service.ExamBoardService,
	settingService *service.SettingService,
) *CatalogHandler {
	return &CatalogHandler{
		subjectService: subjectService,
		topicService:   topicService,
		boardService:   boardService,
		settingService: settingService,
	}
}

// ListSubjects godoc
// GET /api/v1/catalog/subjects
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// ListTopics godoc
// GET /api/v1/catalog/subjects/:id/topics
// Lists topics under a subject, with published question counts.
func (h *CatalogHandler) ListTopics(c *gin.Context) {
	subjectID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.subjectService.GetByID(c.Request.Context(), subjectID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	topics, err := h.topicService.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"topics": topics})
}

// ListExamBoards godoc
// GET /api/v1/catalog/exam-boards
func (h *CatalogHandler) ListExamBoards(c *gin.Context) {
	boards, err := h.boardService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam_boards": boards})
}

// PublicSettings godoc
// GET /api/v1/settings
// Returns the allowlisted subset of settings safe for unauthenticated clients.
func (h *CatalogHandler) PublicSettings(c *gin.Context) {
	settings, err := h.settingService.GetPublicSettings(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}
