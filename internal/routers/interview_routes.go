package routers

import (
	"github.com/go-chi/chi/v5"

	"prepmate/server/internal/handlers"
	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
)

func InterviewRoutes(r *chi.Mux, interviewHandler *handlers.InterviewHandler, questionHandler *handlers.QuestionHandler, jwtSecret string) {
	r.Route("/api/interviews", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.Get("/", interviewHandler.ListHandler)
		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", interviewHandler.CreateHandler)
		r.Get("/{id}", interviewHandler.GetHandler)
		r.Get("/{id}/questions", interviewHandler.QuestionsHandler)
		r.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).Post("/{id}/questions/generate", interviewHandler.GenerateQuestionsHandler)
		r.Post("/{id}/complete", interviewHandler.CompleteHandler)
	})

	r.Route("/api/questions", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/{id}/answer", questionHandler.SubmitAnswerHandler)
	})

	r.With(middleware.RequireAuth(jwtSecret)).Get("/api/stats", interviewHandler.StatsHandler)
}
