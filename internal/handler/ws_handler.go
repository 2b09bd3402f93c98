package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prepnaija/prepnaija-backend/internal/middleware"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	ws "github.com/prepnaija/prepnaija-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the countdown for timed sessions and accepts answer,
// flag and submit actions over the same connection.
type WSHandler struct {
	sessionService *service.SessionService
	log            zerolog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(sessionService *service.SessionService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		sessionService: sessionService,
		log:            log.With().Str("component", "ws_handler").Logger(),
		upgrader:       buildUpgrader(allowedOrigins),
	}
}

// SessionStream godoc
// WS /ws/v1/sessions/:id/stream
// Upgrades to WebSocket for real-time countdown ticks, answer saving and
// submission on timed sessions.
func (h *WSHandler) SessionStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	actor := actorFromClaims(claims)
	session, err := h.sessionService.Get(c.Request.Context(), actor, sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if session.Mode != model.ModeTimed || session.Status != model.SessionStatusInProgress {
		c.JSON(http.StatusConflict, gin.H{"error": "session is not an active timed session"})
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.Wrap(raw)
	defer conn.Close()

	wsLog := h.log.With().Str("session_id", sessionID.String()).Logger()
	wsLog.Info().Msg("Learner connected")

	// The countdown runs server-side so clients cannot stretch the clock.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deadline := session.StartedAt.Add(time.Duration(durationMinutes(session)) * time.Minute)
	go h.runCountdown(ctx, cancel, conn, wsLog, actor, sessionID, deadline)

	for {
		var msg ws.RequestPayload
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}

		switch msg.Action {
		case ws.ActionAnswer:
			h.handleAnswer(ctx, conn, actor, sessionID, &msg)
		case ws.ActionFlag:
			h.handleFlag(ctx, conn, actor, sessionID, &msg)
		case ws.ActionSubmit:
			h.handleSubmit(ctx, cancel, conn, wsLog, actor, sessionID)
			return
		case ws.ActionPing:
			conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			conn.WriteError("unknown action: " + string(msg.Action))
		}
	}
}

// runCountdown ticks once a second and force-submits when time runs out.
func (h *WSHandler) runCountdown(
	ctx context.Context,
	cancel context.CancelFunc,
	conn *ws.Conn,
	wsLog zerolog.Logger,
	actor service.SessionActor,
	sessionID uuid.UUID,
	deadline time.Time,
) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			remaining := int(time.Until(deadline).Seconds())
			if now.Before(deadline) {
				conn.WriteTyped(ws.TickResponse{Event: ws.EventTick, RemainingSecs: remaining})
				continue
			}

			wsLog.Info().Msg("Timed session expired, auto-submitting")
			conn.WriteTyped(ws.TickResponse{Event: ws.EventExpired, RemainingSecs: 0})
			h.handleSubmit(ctx, cancel, conn, wsLog, actor, sessionID)
			return
		}
	}
}

func (h *WSHandler) handleAnswer(ctx context.Context, conn *ws.Conn, actor service.SessionActor, sessionID uuid.UUID, msg *ws.RequestPayload) {
	questionID, err := uuid.Parse(msg.QID)
	if err != nil {
		conn.WriteError("invalid q_id format")
		return
	}
	if msg.Option == "" {
		conn.WriteError("option is required")
		return
	}

	result, err := h.sessionService.SelectAnswer(ctx, actor, sessionID, &model.SelectAnswerRequest{
		QuestionID: questionID,
		Option:     strings.ToUpper(msg.Option),
	})
	if err != nil {
		conn.WriteError(answerErrMessage(err))
		return
	}

	conn.WriteTyped(ws.SavedResponse{Event: ws.EventSaved, Answered: result.Answered})
}

func (h *WSHandler) handleFlag(ctx context.Context, conn *ws.Conn, actor service.SessionActor, sessionID uuid.UUID, msg *ws.RequestPayload) {
	questionID, err := uuid.Parse(msg.QID)
	if err != nil {
		conn.WriteError("invalid q_id format")
		return
	}

	flagged, err := h.sessionService.ToggleFlag(ctx, actor, sessionID, questionID)
	if err != nil {
		conn.WriteError(answerErrMessage(err))
		return
	}

	conn.WriteTyped(ws.FlaggedResponse{Event: ws.EventFlagged, QID: msg.QID, Flagged: flagged})
}

func (h *WSHandler) handleSubmit(ctx context.Context, cancel context.CancelFunc, conn *ws.Conn, wsLog zerolog.Logger, actor service.SessionActor, sessionID uuid.UUID) {
	cancel()

	result, err := h.sessionService.Submit(context.Background(), actor, sessionID)
	if err != nil {
		wsLog.Error().Err(err).Msg("Submit failed")
		conn.WriteError("submit failed")
		return
	}

	wsLog.Info().Float64("score", result.Score).Int("correct", result.Correct).Msg("Session graded")
	conn.WriteTyped(ws.GradedResponse{
		Event:    ws.EventGraded,
		Score:    result.Score,
		Correct:  result.Correct,
		Answered: result.Answered,
		Total:    result.TotalQuestions,
	})
}

func answerErrMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrQuestionNotInPaper):
		return "question is not part of this session"
	case errors.Is(err, service.ErrGuestLimitReached):
		return "free question limit reached"
	case errors.Is(err, service.ErrSessionFinished), errors.Is(err, service.ErrSessionNotActive):
		return "session is no longer active"
	default:
		return "save failed"
	}
}

func durationMinutes(session *model.LearningSession) int {
	if session.DurationMinutes != nil {
		return *session.DurationMinutes
	}
	return 0
}
