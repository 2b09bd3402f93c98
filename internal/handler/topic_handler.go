package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
)

type TopicHandler struct {
	topicService   *service.TopicService
	subjectService *service.SubjectService
}

func NewTopicHandler(topicService *service.TopicService, subjectService *service.SubjectService) *TopicHandler {
	return &TopicHandler{topicService: topicService, subjectService: subjectService}
}

// ListBySubject godoc
// GET /api/v1/admin/subjects/:id/topics
func (h *TopicHandler) ListBySubject(c *gin.Context) {
	subjectID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	topics, err := h.topicService.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if topics == nil {
		topics = []model.Topic{}
	}

	response.Success(c, http.StatusOK, gin.H{"topics": topics})
}

// Create godoc
// POST /api/v1/admin/subjects/:id/topics
func (h *TopicHandler) Create(c *gin.Context) {
	subjectID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.subjectService.GetByID(c.Request.Context(), subjectID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	var req model.CreateTopicRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	topic := &model.Topic{
		SubjectID:   subjectID,
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
	}
	if err := h.topicService.Create(c.Request.Context(), topic); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"topic": topic})
}

// Update godoc
// PUT /api/v1/admin/topics/:id
func (h *TopicHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateTopicRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	topic, err := h.topicService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	topic.Name = req.Name
	topic.Description = req.Description
	topic.Position = req.Position
	if err := h.topicService.Update(c.Request.Context(), topic); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"topic": topic})
}

// Delete godoc
// DELETE /api/v1/admin/topics/:id
func (h *TopicHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.topicService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "topic deleted successfully"})
}
