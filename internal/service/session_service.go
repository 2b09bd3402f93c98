package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/guest"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/planner"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Session business errors.
var (
	ErrNotSessionOwner    = errors.New("session belongs to another learner")
	ErrSessionNotActive   = errors.New("session is not active")
	ErrSessionFinished    = errors.New("session is already finished")
	ErrNoQuestions        = errors.New("no published questions available for the chosen topics")
	ErrGuestLimitReached  = errors.New("guest question limit reached")
	ErrQuestionNotInPaper = errors.New("question is not part of this session")
	ErrModeForbidden      = errors.New("not available in this session mode")
	ErrNoHint             = errors.New("question has no hint")
	ErrBadDistribution    = errors.New("distribution does not match topics and question count")
	ErrTopicMismatch      = errors.New("topics not found or not in the chosen subject")
	ErrDurationRequired   = errors.New("timed sessions require a duration")
)

// SessionActor identifies who is driving a session: a signed-in learner or
// a guest. Exactly one field is set.
type SessionActor struct {
	UserID  *int
	GuestID *uuid.UUID
}

// SessionService owns the learning session lifecycle: creating a paper,
// recording answers, resuming, and submission.
type SessionService struct {
	sessionRepo  *repository.SessionRepository
	questionRepo *repository.QuestionRepository
	answerRepo   *repository.AnswerRepository
	subjectRepo  *repository.SubjectRepository
	topicRepo    *repository.TopicRepository
	passageRepo  *repository.PassageRepository
	progressRepo *repository.ProgressRepository
	planner      *planner.Planner
	gate         *guest.Gate
	tracker      *AnswerTracker
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	sessionRepo *repository.SessionRepository,
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	subjectRepo *repository.SubjectRepository,
	topicRepo *repository.TopicRepository,
	passageRepo *repository.PassageRepository,
	progressRepo *repository.ProgressRepository,
	pl *planner.Planner,
	gate *guest.Gate,
	tracker *AnswerTracker,
	rdb *redis.Client,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		subjectRepo:  subjectRepo,
		topicRepo:    topicRepo,
		passageRepo:  passageRepo,
		progressRepo: progressRepo,
		planner:      pl,
		gate:         gate,
		tracker:      tracker,
		rdb:          rdb,
		log:          log.With().Str("component", "session_service").Logger(),
	}
}

type orderPayload struct {
	SessionID string   `json:"session_id"`
	Order     []string `json:"order"`
}

type activityPayload struct {
	SessionID string `json:"session_id"`
}

type progressPayload struct {
	UserID    int    `json:"user_id"`
	TopicID   string `json:"topic_id"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
}

// validateSessionRequest enforces cross-field rules the binding tags cannot
// express. The countdown stream needs a real deadline, so a timed session
// without a duration is rejected here.
func validateSessionRequest(req *model.CreateSessionRequest) error {
	if model.SessionMode(req.Mode) == model.ModeTimed &&
		(req.DurationMinutes == nil || *req.DurationMinutes <= 0) {
		return ErrDurationRequired
	}
	return nil
}

// CreateSession plans a paper and starts a session for the actor.
func (s *SessionService) CreateSession(ctx context.Context, actor SessionActor, req *model.CreateSessionRequest) (*model.SessionView, error) {
	if err := validateSessionRequest(req); err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.GetByIDs(ctx, req.TopicIDs)
	if err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}
	if len(topics) != len(req.TopicIDs) {
		return nil, ErrTopicMismatch
	}
	for _, t := range topics {
		if t.SubjectID != req.SubjectID {
			return nil, ErrTopicMismatch
		}
	}

	dist, err := resolveDistribution(req)
	if err != nil {
		return nil, err
	}

	questions, err := s.planner.Assemble(ctx, req.TopicIDs, req.TotalQuestions, dist)
	if err != nil {
		return nil, fmt.Errorf("assemble paper: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	session := &model.LearningSession{
		UserID:          actor.UserID,
		GuestID:         actor.GuestID,
		SubjectID:       req.SubjectID,
		TopicIDs:        req.TopicIDs,
		Mode:            model.SessionMode(req.Mode),
		TotalQuestions:  len(questions),
		Distribution:    dist,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	order := make([]uuid.UUID, len(questions))
	for i := range questions {
		order[i] = questions[i].ID
	}
	s.persistOrder(ctx, session.ID, order)

	return s.buildView(ctx, session, questions)
}

// resolveDistribution validates an explicit distribution or plans an even
// split across topics. Single-topic sessions use a direct draw (nil).
func resolveDistribution(req *model.CreateSessionRequest) (model.Distribution, error) {
	if len(req.Distribution) == 0 {
		if len(req.TopicIDs) > 1 {
			return planner.EvenSplit(req.TopicIDs, req.TotalQuestions), nil
		}
		return nil, nil
	}

	allowed := make(map[uuid.UUID]bool, len(req.TopicIDs))
	for _, tid := range req.TopicIDs {
		allowed[tid] = true
	}

	dist := make(model.Distribution, len(req.Distribution))
	sum := 0
	for key, n := range req.Distribution {
		tid, err := uuid.Parse(key)
		if err != nil || !allowed[tid] || n < 0 {
			return nil, ErrBadDistribution
		}
		dist[tid] = n
		sum += n
	}
	if sum != req.TotalQuestions {
		return nil, ErrBadDistribution
	}
	return dist, nil
}

// persistOrder warms the Redis order cache and queues the durable write.
func (s *SessionService) persistOrder(ctx context.Context, sessionID uuid.UUID, order []uuid.UUID) {
	if err := s.tracker.SaveOrder(ctx, sessionID.String(), order); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID.String()).Msg("Failed to cache question order")
	}

	ids := make([]string, len(order))
	for i, id := range order {
		ids[i] = id.String()
	}
	raw, _ := json.Marshal(orderPayload{SessionID: sessionID.String(), Order: ids})
	if err := s.rdb.RPush(ctx, config.WorkerKey.PersistOrderQueue, raw).Err(); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID.String()).Msg("Failed to queue order persistence")
	}
}

// GetView loads everything a client needs to render or resume a session.
func (s *SessionService) GetView(ctx context.Context, actor SessionActor, sessionID uuid.UUID) (*model.SessionView, error) {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.resolvePaper(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, questions)
}

// resolvePaper returns the session's exact question list, trying sources in
// order of freshness: the Redis cache, the durable order table, the recorded
// answers, and finally a fresh draw. Later tiers re-warm the earlier ones.
func (s *SessionService) resolvePaper(ctx context.Context, session *model.LearningSession) ([]model.Question, error) {
	sid := session.ID.String()

	ids, err := s.tracker.GetOrder(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sid).Msg("Order cache read failed, falling back")
	}
	if len(ids) > 0 {
		return s.questionRepo.GetByIDs(ctx, ids)
	}

	ids, err = s.sessionRepo.GetOrder(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("load stored order: %w", err)
	}
	if len(ids) > 0 {
		if err := s.tracker.SaveOrder(ctx, sid, ids); err != nil {
			s.log.Warn().Err(err).Str("session_id", sid).Msg("Failed to re-warm order cache")
		}
		return s.questionRepo.GetByIDs(ctx, ids)
	}

	// No order survives. Rebuild from recorded answers, topping the paper
	// back up to size, so already-answered questions keep their grading.
	answers, err := s.answerRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	order := paperFromAnswers(answers)
	seen := make(map[uuid.UUID]bool, session.TotalQuestions)
	for _, id := range order {
		seen[id] = true
	}

	if len(order) < session.TotalQuestions {
		drawn, err := s.planner.Assemble(ctx, session.TopicIDs, session.TotalQuestions, session.Distribution)
		if err != nil {
			return nil, fmt.Errorf("redraw paper: %w", err)
		}
		for _, q := range drawn {
			if len(order) >= session.TotalQuestions {
				break
			}
			if !seen[q.ID] {
				seen[q.ID] = true
				order = append(order, q.ID)
			}
		}
	}
	if len(order) == 0 {
		return nil, ErrNoQuestions
	}

	s.persistOrder(ctx, session.ID, order)
	return s.questionRepo.GetByIDs(ctx, order)
}

// paperFromAnswers rebuilds a question order from recorded answer rows,
// keeping the first occurrence of each question.
func paperFromAnswers(answers []model.SessionAnswer) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(answers))
	order := make([]uuid.UUID, 0, len(answers))
	for _, a := range answers {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			order = append(order, a.QuestionID)
		}
	}
	return order
}

// loadState returns the session's answer sheet. When Redis lost the live
// state the stored answer rows restore it; guests have no stored rows.
func (s *SessionService) loadState(ctx context.Context, session *model.LearningSession) (*model.AnswerState, error) {
	state, err := s.tracker.GetState(ctx, session.ID.String())
	if err != nil {
		return nil, fmt.Errorf("get answer state: %w", err)
	}
	if state.AnsweredCount() > 0 || session.IsGuest() {
		return state, nil
	}

	stored, err := s.answerRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("load stored answers: %w", err)
	}
	mergeStoredAnswers(state, stored)
	return state, nil
}

// mergeStoredAnswers restores recorded answer rows into an empty sheet.
// Review flags are live-only state and stay cleared.
func mergeStoredAnswers(state *model.AnswerState, stored []model.SessionAnswer) {
	for _, a := range stored {
		state.Select(a.QuestionID, a.SelectedOption)
		if a.HintUsed {
			state.SetHintUsed(a.QuestionID)
		}
		if a.SolutionViewed {
			state.SetSolutionViewed(a.QuestionID)
		}
	}
}

func (s *SessionService) buildView(ctx context.Context, session *model.LearningSession, questions []model.Question) (*model.SessionView, error) {
	subject, err := s.subjectRepo.GetByID(ctx, session.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	topics, err := s.topicRepo.GetByIDs(ctx, session.TopicIDs)
	if err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}

	passageIDs := make([]uuid.UUID, 0)
	seenPassage := make(map[uuid.UUID]bool)
	paper := make([]model.QuestionForLearner, len(questions))
	for i := range questions {
		paper[i] = questions[i].ForLearner()
		if pid := questions[i].PassageID; pid != nil && !seenPassage[*pid] {
			seenPassage[*pid] = true
			passageIDs = append(passageIDs, *pid)
		}
	}

	var passages []model.Passage
	if len(passageIDs) > 0 {
		passages, err = s.passageRepo.GetByIDs(ctx, passageIDs)
		if err != nil {
			return nil, fmt.Errorf("get passages: %w", err)
		}
	}

	state, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	answers := make(map[string]string)
	for qid, option := range state.Answers() {
		answers[qid.String()] = option
	}
	flags := make([]string, 0)
	for _, qid := range state.Flagged() {
		flags = append(flags, qid.String())
	}

	return &model.SessionView{
		Session:   session,
		Subject:   subject,
		Topics:    topics,
		Questions: paper,
		Passages:  passages,
		Answers:   answers,
		Flagged:   flags,
	}, nil
}

// Get loads a session the actor owns, without resolving the paper. Used by
// callers that only need session metadata, such as the countdown stream.
func (s *SessionService) Get(ctx context.Context, actor SessionActor, sessionID uuid.UUID) (*model.LearningSession, error) {
	return s.authorize(ctx, actor, sessionID)
}

// authorize loads a session and verifies the actor owns it.
func (s *SessionService) authorize(ctx context.Context, actor SessionActor, sessionID uuid.UUID) (*model.LearningSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.UserID != nil:
		if session.UserID == nil || *session.UserID != *actor.UserID {
			return nil, ErrNotSessionOwner
		}
	case actor.GuestID != nil:
		if session.GuestID == nil || *session.GuestID != *actor.GuestID {
			return nil, ErrNotSessionOwner
		}
	default:
		return nil, ErrNotSessionOwner
	}
	return session, nil
}

// requireActive loads and authorizes a session that must be in progress.
func (s *SessionService) requireActive(ctx context.Context, actor SessionActor, sessionID uuid.UUID) (*model.LearningSession, error) {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Terminal() {
		return nil, ErrSessionFinished
	}
	if session.Status != model.SessionStatusInProgress {
		return nil, ErrSessionNotActive
	}
	return session, nil
}

// SelectAnswer records an option choice. Practice mode grades immediately;
// test and timed modes defer grading to submission. Guests burn one trial
// credit per distinct question.
func (s *SessionService) SelectAnswer(ctx context.Context, actor SessionActor, sessionID uuid.UUID, req *model.SelectAnswerRequest) (*model.SelectAnswerResult, error) {
	session, err := s.requireActive(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.resolvePaper(ctx, session)
	if err != nil {
		return nil, err
	}
	var question *model.Question
	for i := range questions {
		if questions[i].ID == req.QuestionID {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		return nil, ErrQuestionNotInPaper
	}

	state, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}

	result := &model.SelectAnswerResult{
		QuestionID: req.QuestionID,
		Option:     req.Option,
	}

	if session.IsGuest() {
		// Changing an already-counted answer stays free; only new questions
		// consume trial credit.
		if state.Option(req.QuestionID) == "" {
			reached, err := s.gate.HasReachedLimit(ctx, *session.GuestID)
			if err != nil {
				return nil, fmt.Errorf("check guest limit: %w", err)
			}
			if reached {
				return nil, ErrGuestLimitReached
			}
		}
	}

	if err := s.tracker.SetAnswer(ctx, session.ID.String(), req.QuestionID, req.Option); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}
	state.Select(req.QuestionID, req.Option)
	result.Answered = state.AnsweredCount()

	if session.IsGuest() {
		if err := s.gate.RecordFirstAnswer(ctx, *session.GuestID, req.QuestionID); err != nil {
			return nil, fmt.Errorf("record guest answer: %w", err)
		}
		status, err := s.gate.Status(ctx, *session.GuestID)
		if err != nil {
			return nil, fmt.Errorf("guest status: %w", err)
		}
		result.GuestRemaining = &status.Remaining
	}

	if session.Mode == model.ModePractice {
		isCorrect := req.Option == question.CorrectOption
		result.IsCorrect = &isCorrect
		result.CorrectOption = question.CorrectOption
		result.Explanation = question.Explanation

		if !session.IsGuest() {
			entry := state.Get(req.QuestionID)
			answer := &model.SessionAnswer{
				SessionID:      session.ID,
				QuestionID:     req.QuestionID,
				SelectedOption: req.Option,
				IsCorrect:      isCorrect,
				HintUsed:       entry.HintUsed,
				SolutionViewed: entry.SolutionViewed,
			}
			if err := s.answerRepo.Upsert(ctx, answer); err != nil {
				return nil, fmt.Errorf("persist answer: %w", err)
			}
			s.queueActivity(ctx, session.ID)
		}
	}

	return result, nil
}

// queueActivity asks the activity worker to refresh the session's counters.
func (s *SessionService) queueActivity(ctx context.Context, sessionID uuid.UUID) {
	raw, _ := json.Marshal(activityPayload{SessionID: sessionID.String()})
	if err := s.rdb.RPush(ctx, config.WorkerKey.SessionActivityQueue, raw).Err(); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID.String()).Msg("Failed to queue activity update")
	}
}

// ToggleFlag flips the review flag on a question and reports the new state.
func (s *SessionService) ToggleFlag(ctx context.Context, actor SessionActor, sessionID, questionID uuid.UUID) (bool, error) {
	session, err := s.requireActive(ctx, actor, sessionID)
	if err != nil {
		return false, err
	}
	return s.tracker.ToggleFlag(ctx, session.ID.String(), questionID)
}

// GetHint reveals a question's hint. Practice mode only; usage is tracked
// against the session.
func (s *SessionService) GetHint(ctx context.Context, actor SessionActor, sessionID, questionID uuid.UUID) (string, error) {
	session, err := s.requireActive(ctx, actor, sessionID)
	if err != nil {
		return "", err
	}
	if session.Mode != model.ModePractice {
		return "", ErrModeForbidden
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return "", err
	}
	if question.Hint == "" {
		return "", ErrNoHint
	}

	if err := s.tracker.MarkHintUsed(ctx, session.ID.String(), questionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("Failed to record hint usage")
	}
	return question.Hint, nil
}

// SolutionView is the revealed answer for one practice question.
type SolutionView struct {
	QuestionID    uuid.UUID `json:"question_id"`
	CorrectOption string    `json:"correct_option"`
	Explanation   string    `json:"explanation,omitempty"`
}

// GetSolution reveals the correct option and explanation. Practice mode
// only, and only after the learner has attempted the question.
func (s *SessionService) GetSolution(ctx context.Context, actor SessionActor, sessionID, questionID uuid.UUID) (*SolutionView, error) {
	session, err := s.requireActive(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Mode != model.ModePractice {
		return nil, ErrModeForbidden
	}

	state, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	if state.Option(questionID) == "" {
		return nil, ErrQuestionNotInPaper
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if err := s.tracker.MarkSolutionViewed(ctx, session.ID.String(), questionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("Failed to record solution view")
	}
	return &SolutionView{
		QuestionID:    questionID,
		CorrectOption: question.CorrectOption,
		Explanation:   question.Explanation,
	}, nil
}

// Progress returns the answered/unanswered/flagged counts for a session.
func (s *SessionService) Progress(ctx context.Context, actor SessionActor, sessionID uuid.UUID) (*model.SessionProgress, error) {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}

	state, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	return &model.SessionProgress{
		Answered:   state.AnsweredCount(),
		Unanswered: state.UnansweredCount(session.TotalQuestions),
		Flagged:    state.FlaggedCount(),
		Total:      session.TotalQuestions,
	}, nil
}

// Submit finalizes a session: grades the full paper, persists answers for
// registered learners, and queues topic progress accumulation. Unanswered
// questions count as wrong. Submission is idempotent at the storage level,
// so a retried request cannot double-write.
func (s *SessionService) Submit(ctx context.Context, actor SessionActor, sessionID uuid.UUID) (*model.SessionResult, error) {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Terminal() {
		return nil, ErrSessionFinished
	}

	questions, err := s.resolvePaper(ctx, session)
	if err != nil {
		return nil, err
	}

	state, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}

	total := len(questions)
	answered, correct := GradePaper(questions, state)
	score := ComputeScore(correct, total)

	elapsed := int(time.Since(session.StartedAt).Seconds())
	if session.DurationMinutes != nil {
		if max := *session.DurationMinutes * 60; elapsed > max {
			elapsed = max
		}
	}
	perAnswer := SplitTimeSpent(elapsed, total)

	if !session.IsGuest() {
		batch := make([]model.SessionAnswer, 0, answered)
		for i := range questions {
			q := &questions[i]
			entry := state.Get(q.ID)
			if entry == nil || entry.Option == "" {
				continue
			}
			batch = append(batch, model.SessionAnswer{
				SessionID:      session.ID,
				QuestionID:     q.ID,
				SelectedOption: entry.Option,
				IsCorrect:      entry.Option == q.CorrectOption,
				TimeSpentSecs:  perAnswer,
				HintUsed:       entry.HintUsed,
				SolutionViewed: entry.SolutionViewed,
			})
		}
		if err := s.answerRepo.UpsertBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("persist answers: %w", err)
		}
	}

	if err := s.sessionRepo.Complete(ctx, session.ID, answered, correct, score, elapsed); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	if !session.IsGuest() {
		s.queueProgress(ctx, *session.UserID, questions, state)
	}

	if err := s.tracker.Clear(ctx, session.ID.String()); err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("Failed to clear session cache")
	}

	return &model.SessionResult{
		SessionID:      session.ID,
		TotalQuestions: total,
		Answered:       answered,
		Correct:        correct,
		Score:          score,
		TimeSpentSecs:  elapsed,
	}, nil
}

// queueProgress pushes per-topic attempt deltas for the progress worker.
func (s *SessionService) queueProgress(ctx context.Context, userID int, questions []model.Question, state *model.AnswerState) {
	type delta struct{ attempted, correct int }
	byTopic := make(map[uuid.UUID]*delta)
	for i := range questions {
		q := &questions[i]
		option := state.Option(q.ID)
		if option == "" {
			continue
		}
		d := byTopic[q.TopicID]
		if d == nil {
			d = &delta{}
			byTopic[q.TopicID] = d
		}
		d.attempted++
		if option == q.CorrectOption {
			d.correct++
		}
	}

	for tid, d := range byTopic {
		raw, _ := json.Marshal(progressPayload{
			UserID:    userID,
			TopicID:   tid.String(),
			Attempted: d.attempted,
			Correct:   d.correct,
		})
		if err := s.rdb.RPush(ctx, config.WorkerKey.TopicProgressQueue, raw).Err(); err != nil {
			s.log.Error().Err(err).Int("user_id", userID).Msg("Failed to queue progress update")
		}
	}
}

// Pause suspends an in-progress session.
func (s *SessionService) Pause(ctx context.Context, actor SessionActor, sessionID uuid.UUID) error {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return err
	}
	if session.Terminal() {
		return ErrSessionFinished
	}
	if session.Status != model.SessionStatusInProgress {
		return ErrSessionNotActive
	}
	return s.sessionRepo.SetStatus(ctx, session.ID, model.SessionStatusPaused)
}

// Resume reactivates a paused session.
func (s *SessionService) Resume(ctx context.Context, actor SessionActor, sessionID uuid.UUID) error {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return err
	}
	if session.Terminal() {
		return ErrSessionFinished
	}
	if session.Status != model.SessionStatusPaused {
		return ErrSessionNotActive
	}
	return s.sessionRepo.SetStatus(ctx, session.ID, model.SessionStatusInProgress)
}

// Abandon closes a session without grading it.
func (s *SessionService) Abandon(ctx context.Context, actor SessionActor, sessionID uuid.UUID) error {
	session, err := s.authorize(ctx, actor, sessionID)
	if err != nil {
		return err
	}
	if session.Terminal() {
		return ErrSessionFinished
	}
	if err := s.sessionRepo.Abandon(ctx, session.ID); err != nil {
		return err
	}
	if err := s.tracker.Clear(ctx, session.ID.String()); err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("Failed to clear session cache")
	}
	return nil
}

// ListForUser returns a learner's session history.
func (s *SessionService) ListForUser(ctx context.Context, userID, page, perPage int) ([]model.LearningSession, int, error) {
	return s.sessionRepo.ListByUser(ctx, userID, perPage, (page-1)*perPage)
}

// Dashboard aggregates a learner's overall stats, recent sessions and topic
// progress.
func (s *SessionService) Dashboard(ctx context.Context, userID int) (*model.LearnerDashboard, error) {
	sessions, answered, correct, avgScore, err := s.sessionRepo.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	recent, _, err := s.sessionRepo.ListByUser(ctx, userID, 5, 0)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	if recent == nil {
		recent = []model.LearningSession{}
	}

	progress, err := s.progressRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topic progress: %w", err)
	}
	if progress == nil {
		progress = []model.TopicProgress{}
	}

	dashboard := &model.LearnerDashboard{
		SessionsCompleted: sessions,
		QuestionsAnswered: answered,
		QuestionsCorrect:  correct,
		RecentSessions:    recent,
		TopicProgress:     progress,
	}
	if sessions > 0 {
		dashboard.AverageScore = &avgScore
	}
	return dashboard, nil
}
