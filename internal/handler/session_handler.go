package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/prepnaija/prepnaija-backend/internal/middleware"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
)

// SessionHandler handles the learner session lifecycle.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// failSession maps session service errors to API error responses.
func failSession(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, service.ErrNotSessionOwner):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, service.ErrSessionFinished):
		response.Fail(c, http.StatusConflict, response.ErrSessionFinished)
	case errors.Is(err, service.ErrSessionNotActive):
		response.Fail(c, http.StatusConflict, response.ErrSessionNotActive)
	case errors.Is(err, service.ErrNoQuestions):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoQuestions)
	case errors.Is(err, service.ErrGuestLimitReached):
		response.Fail(c, http.StatusForbidden, response.ErrGuestLimitReached)
	case errors.Is(err, service.ErrQuestionNotInPaper):
		response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotInPaper)
	case errors.Is(err, service.ErrModeForbidden), errors.Is(err, service.ErrNoHint):
		response.Fail(c, http.StatusForbidden, response.ErrActionForbidden)
	case errors.Is(err, service.ErrBadDistribution), errors.Is(err, service.ErrTopicMismatch),
		errors.Is(err, service.ErrDurationRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// Create godoc
// POST /api/v1/sessions
// Starts a new practice, test or timed session.
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	view, err := h.sessionService.CreateSession(c.Request.Context(), actor, &req)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// Get godoc
// GET /api/v1/sessions/:id
// Returns the session with its full question paper and saved answer state.
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	view, err := h.sessionService.GetView(c.Request.Context(), actor, id)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Answer godoc
// POST /api/v1/sessions/:id/answers
// Records the learner's chosen option for one question.
func (h *SessionHandler) Answer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.SelectAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	result, err := h.sessionService.SelectAnswer(c.Request.Context(), actor, id, &req)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ToggleFlag godoc
// POST /api/v1/sessions/:id/questions/:question_id/flag
// Flips the review flag on a question and reports the new state.
func (h *SessionHandler) ToggleFlag(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := parseUUIDParam(c, "question_id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	flagged, err := h.sessionService.ToggleFlag(c.Request.Context(), actor, id, questionID)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"question_id": questionID,
		"flagged":     flagged,
	})
}

// Hint godoc
// GET /api/v1/sessions/:id/questions/:question_id/hint
// Returns the hint for a question. Practice mode only.
func (h *SessionHandler) Hint(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := parseUUIDParam(c, "question_id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	hint, err := h.sessionService.GetHint(c.Request.Context(), actor, id, questionID)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"question_id": questionID,
		"hint":        hint,
	})
}

// Solution godoc
// GET /api/v1/sessions/:id/questions/:question_id/solution
// Returns the worked solution for an answered question. Practice mode only.
func (h *SessionHandler) Solution(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := parseUUIDParam(c, "question_id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	solution, err := h.sessionService.GetSolution(c.Request.Context(), actor, id, questionID)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, solution)
}

// Progress godoc
// GET /api/v1/sessions/:id/progress
// Returns answered/unanswered/flagged counts for the session.
func (h *SessionHandler) Progress(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	progress, err := h.sessionService.Progress(c.Request.Context(), actor, id)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, progress)
}

// Submit godoc
// POST /api/v1/sessions/:id/submit
// Grades the full paper and completes the session.
func (h *SessionHandler) Submit(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	result, err := h.sessionService.Submit(c.Request.Context(), actor, id)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Pause godoc
// POST /api/v1/sessions/:id/pause
func (h *SessionHandler) Pause(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	if err := h.sessionService.Pause(c.Request.Context(), actor, id); err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": model.SessionStatusPaused})
}

// Resume godoc
// POST /api/v1/sessions/:id/resume
func (h *SessionHandler) Resume(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	if err := h.sessionService.Resume(c.Request.Context(), actor, id); err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": model.SessionStatusInProgress})
}

// Abandon godoc
// POST /api/v1/sessions/:id/abandon
// Ends the session without grading it.
func (h *SessionHandler) Abandon(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromClaims(middleware.GetClaims(c))
	if err := h.sessionService.Abandon(c.Request.Context(), actor, id); err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": model.SessionStatusAbandoned})
}

// List godoc
// GET /api/v1/sessions
// Lists the signed-in learner's past sessions. Registered accounts only.
func (h *SessionHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	page, perPage := parsePagination(c)

	sessions, total, err := h.sessionService.ListForUser(c.Request.Context(), claims.UserID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"sessions": sessions}, newPagination(page, perPage, total))
}
