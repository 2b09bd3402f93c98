package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/guest"
	"github.com/prepnaija/prepnaija-backend/internal/middleware"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
)

// LearnerHandler serves signed-in learner views outside a single session:
// the dashboard and the guest trial status.
type LearnerHandler struct {
	sessionService *service.SessionService
	gate           *guest.Gate
}

// NewLearnerHandler creates a new LearnerHandler.
func NewLearnerHandler(sessionService *service.SessionService, gate *guest.Gate) *LearnerHandler {
	return &LearnerHandler{sessionService: sessionService, gate: gate}
}

// Dashboard godoc
// GET /api/v1/me/dashboard
// Aggregates completed-session stats, recent sessions and topic progress.
func (h *LearnerHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	dashboard, err := h.sessionService.Dashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

// GuestStatus godoc
// GET /api/v1/guest/status
// Reports how many free questions the guest has used and has left.
func (h *LearnerHandler) GuestStatus(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.TokenType != service.TokenTypeGuest {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	guestID, err := uuid.Parse(claims.GuestID)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	status, err := h.gate.Status(c.Request.Context(), guestID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, status)
}
