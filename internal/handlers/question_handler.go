package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"prepmate/server/internal/interview"
	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
	"prepmate/server/internal/utils"
)

// QuestionHandler covers per-question operations.
type QuestionHandler struct {
	Service *interview.Service
	Logger  *zap.Logger
}

func NewQuestionHandler(service *interview.Service, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{Service: service, Logger: logger}
}

// SubmitAnswerHandler records an answer and returns the question with its
// feedback and score filled in. Evaluation never fails outward; a provider
// outage just means the heuristic scorer produced the feedback.
func (h *QuestionHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Question ID must be a positive integer")
		return
	}
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	question, err := h.Service.SubmitAnswer(r.Context(), middleware.UserID(r), id, req.Answer)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, question)
}
