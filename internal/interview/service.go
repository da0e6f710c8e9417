// Package interview implements the interview lifecycle: session creation,
// question generation, answer evaluation and completion. Remote AI calls get
// exactly one attempt per operation; any provider failure degrades to the
// deterministic local fallback without surfacing an error to the caller.
package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepmate/server/internal/fallback"
	"prepmate/server/internal/llm"
	"prepmate/server/internal/metrics"
	"prepmate/server/internal/models"
	"prepmate/server/internal/repositories"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNotOwner         = errors.New("interview does not belong to user")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrAlreadyCompleted = errors.New("interview already completed")
)

const DefaultProviderTimeout = 15 * time.Second

type Service struct {
	interviews *repositories.InterviewRepository
	questions  *repositories.QuestionRepository
	provider   llm.Provider
	logger     *zap.Logger

	// providerTimeout bounds each remote call; the provider itself sets no
	// deadline.
	providerTimeout time.Duration
}

func NewService(
	interviews *repositories.InterviewRepository,
	questions *repositories.QuestionRepository,
	provider llm.Provider,
	logger *zap.Logger,
	providerTimeout time.Duration,
) *Service {
	if providerTimeout <= 0 {
		providerTimeout = DefaultProviderTimeout
	}
	return &Service{
		interviews:      interviews,
		questions:       questions,
		provider:        provider,
		logger:          logger,
		providerTimeout: providerTimeout,
	}
}

// List returns the user's interviews, newest first.
func (s *Service) List(userID uint) ([]models.Interview, error) {
	return s.interviews.GetByUserID(userID)
}

// Get loads one interview, enforcing ownership. A missing interview is
// ErrNotFound; an existing interview owned by someone else is ErrNotOwner so
// handlers can answer 403 instead of 404.
func (s *Service) Get(userID, interviewID uint) (*models.Interview, error) {
	interview, err := s.interviews.GetByID(interviewID)
	if errors.Is(err, repositories.ErrInterviewNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if interview.UserID != userID {
		return nil, ErrNotOwner
	}
	return interview, nil
}

// Create starts a new session. Enum validation happens at the request layer.
func (s *Service) Create(userID uint, role, difficulty, questionType string) (*models.Interview, error) {
	interview := &models.Interview{
		UserID:       userID,
		Role:         role,
		Difficulty:   difficulty,
		QuestionType: questionType,
	}
	if err := s.interviews.Create(interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return interview, nil
}

// Questions returns an interview's questions in display order.
func (s *Service) Questions(userID, interviewID uint) ([]models.Question, error) {
	if _, err := s.Get(userID, interviewID); err != nil {
		return nil, err
	}
	return s.questions.GetByInterviewID(interviewID)
}

// GenerateQuestions creates the question set for an interview. Repeated calls
// return the existing set unchanged. The remote provider gets one bounded
// attempt; on any failure the canned question bank serves the same request.
func (s *Service) GenerateQuestions(ctx context.Context, userID, interviewID uint, count int) ([]models.Question, error) {
	interview, err := s.Get(userID, interviewID)
	if err != nil {
		return nil, err
	}

	existing, err := s.questions.GetByInterviewID(interviewID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	contents := s.generateContents(ctx, interview, count)

	questions := make([]models.Question, len(contents))
	for i, content := range contents {
		questions[i] = models.Question{
			InterviewID: interviewID,
			Content:     content,
			Type:        interview.QuestionType,
			Position:    i + 1,
		}
	}
	return s.questions.CreateBatch(questions)
}

func (s *Service) generateContents(ctx context.Context, interview *models.Interview, count int) []string {
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	callID := uuid.New().String()
	contents, err := s.provider.GenerateQuestions(callCtx, interview.Role, interview.QuestionType, interview.Difficulty, count)
	metrics.RecordProviderCall("generate_questions", err)
	if err == nil {
		return contents
	}

	metrics.RecordFallback("generate_questions")
	s.logger.Warn("question generation fell back to local bank",
		zap.String("call_id", callID),
		zap.Uint("interview_id", interview.ID),
		zap.String("role", interview.Role),
		zap.Error(err))
	return fallback.Questions(interview.Role, interview.QuestionType, interview.Difficulty, count)
}

// SubmitAnswer evaluates and records an answer. Evaluation mirrors question
// generation: one remote attempt, then the heuristic scorer. The answer,
// feedback and score land in a single update.
func (s *Service) SubmitAnswer(ctx context.Context, userID, questionID uint, answer string) (*models.Question, error) {
	question, err := s.questions.GetByID(questionID)
	if errors.Is(err, repositories.ErrQuestionNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	interview, err := s.Get(userID, question.InterviewID)
	if err != nil {
		return nil, err
	}
	if interview.Completed {
		return nil, ErrAlreadyCompleted
	}
	if question.Answered() {
		return nil, ErrAlreadyAnswered
	}

	feedback := s.evaluate(ctx, question, interview, answer)

	encoded := &models.Question{}
	if err := encoded.SetFeedback(&feedback); err != nil {
		return nil, err
	}
	return s.questions.RecordAnswer(questionID, answer, *encoded.Feedback, feedback.OverallScore)
}

func (s *Service) evaluate(ctx context.Context, question *models.Question, interview *models.Interview, answer string) models.FeedbackContent {
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	callID := uuid.New().String()
	remote, err := s.provider.EvaluateAnswer(callCtx, question.Content, answer, interview.Role, question.Type, interview.Difficulty)
	metrics.RecordProviderCall("evaluate_answer", err)
	if err == nil {
		return *remote
	}

	metrics.RecordFallback("evaluate_answer")
	s.logger.Warn("answer evaluation fell back to heuristic scorer",
		zap.String("call_id", callID),
		zap.Uint("question_id", question.ID),
		zap.String("type", question.Type),
		zap.Error(err))
	return fallback.Evaluate(answer, question.Type)
}

// Complete finishes an interview: its score becomes the rounded mean of the
// answered questions' scores, or 0 when nothing was answered. Terminal; a
// second call is rejected.
func (s *Service) Complete(userID, interviewID uint) (*models.Interview, error) {
	interview, err := s.Get(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Completed {
		return nil, ErrAlreadyCompleted
	}

	questions, err := s.questions.GetByInterviewID(interviewID)
	if err != nil {
		return nil, err
	}

	total, answered := 0, 0
	for _, question := range questions {
		if question.Score != nil {
			total += *question.Score
			answered++
		}
	}
	score := 0
	if answered > 0 {
		score = (total + answered/2) / answered
	}

	return s.interviews.Complete(interviewID, score)
}

// Stats aggregates a user's history for the dashboard.
func (s *Service) Stats(userID uint) (*models.StatsResponse, error) {
	return s.interviews.UserStats(userID)
}
