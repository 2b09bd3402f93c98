package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionAnswer Action = "answer"
	ActionFlag   Action = "flag"
	ActionSubmit Action = "submit"
	ActionPing   Action = "ping"
)

// RequestPayload carries any client action; unused fields stay empty.
type RequestPayload struct {
	Action Action `json:"action"`
	QID    string `json:"q_id,omitempty"`
	Option string `json:"option,omitempty"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError   Event = "error"
	EventSaved   Event = "saved"
	EventFlagged Event = "flagged"
	EventTick    Event = "tick"
	EventGraded  Event = "graded"
	EventExpired Event = "expired"
	EventPong    Event = "pong"
)

// SavedResponse acknowledges a recorded answer.
type SavedResponse struct {
	Event    Event `json:"event"`
	Answered int   `json:"answered"`
}

// FlaggedResponse reports the new flag state of a question.
type FlaggedResponse struct {
	Event   Event  `json:"event"`
	QID     string `json:"q_id"`
	Flagged bool   `json:"flagged"`
}

// TickResponse streams the countdown for timed sessions.
type TickResponse struct {
	Event         Event `json:"event"`
	RemainingSecs int   `json:"remaining_secs"`
}

// GradedResponse delivers the final result after submission.
type GradedResponse struct {
	Event    Event   `json:"event"`
	Score    float64 `json:"score"`
	Correct  int     `json:"correct"`
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
}

// ErrorResponse reports a failed action.
type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// PongResponse answers a keepalive ping.
type PongResponse struct {
	Event Event `json:"event"`
}
