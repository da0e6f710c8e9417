package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prepmate/server/internal/interview"
	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
	"prepmate/server/internal/utils"
)

// InterviewHandler exposes the interview lifecycle over HTTP.
type InterviewHandler struct {
	Service *interview.Service
	Logger  *zap.Logger
}

func NewInterviewHandler(service *interview.Service, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{Service: service, Logger: logger}
}

// writeServiceError maps lifecycle sentinel errors onto HTTP statuses.
// Ownership violations stay distinct from not-found.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, interview.ErrNotFound):
		utils.JSONError(w, http.StatusNotFound, "not_found", "Resource not found")
	case errors.Is(err, interview.ErrNotOwner):
		utils.JSONError(w, http.StatusForbidden, "forbidden", "You do not own this interview")
	case errors.Is(err, interview.ErrAlreadyAnswered):
		utils.JSONError(w, http.StatusConflict, "already_answered", "Question has already been answered")
	case errors.Is(err, interview.ErrAlreadyCompleted):
		utils.JSONError(w, http.StatusConflict, "already_completed", "Interview has already been completed")
	default:
		logger.Error("interview operation failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "storage_error", "Operation failed")
	}
}

func idParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	return uint(id), err == nil && id > 0
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.Service.List(middleware.UserID(r))
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, interviews)
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Interview ID must be a positive integer")
		return
	}
	result, err := h.Service.Get(middleware.UserID(r), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	result, err := h.Service.Create(middleware.UserID(r), req.Role, req.Difficulty, req.QuestionType)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

func (h *InterviewHandler) QuestionsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Interview ID must be a positive integer")
		return
	}
	questions, err := h.Service.Questions(middleware.UserID(r), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, questions)
}

func (h *InterviewHandler) GenerateQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Interview ID must be a positive integer")
		return
	}
	req := middleware.GetValidatedRequest[*models.GenerateQuestionsRequest](r)

	questions, err := h.Service.GenerateQuestions(r.Context(), middleware.UserID(r), id, req.Count)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, questions)
}

func (h *InterviewHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Interview ID must be a positive integer")
		return
	}
	result, err := h.Service.Complete(middleware.UserID(r), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(middleware.UserID(r))
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}
