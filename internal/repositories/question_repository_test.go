package repositories

import (
	"errors"
	"testing"

	"prepmate/server/internal/models"
	"prepmate/server/internal/testhelpers"
)

func newQuestionRepo(t *testing.T) *QuestionRepository {
	t.Helper()
	return &QuestionRepository{DB: testhelpers.SetupTestDB(t)}
}

func TestQuestionRepository_CreateBatch(t *testing.T) {
	repo := newQuestionRepo(t)

	created, err := repo.CreateBatch([]models.Question{
		{InterviewID: 1, Content: "first", Type: "technical", Position: 1},
		{InterviewID: 1, Content: "second", Type: "technical", Position: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 created questions, got %d", len(created))
	}
	for _, question := range created {
		if question.ID == 0 {
			t.Fatalf("expected IDs to be assigned")
		}
		if question.Answered() {
			t.Fatalf("new questions must start unanswered")
		}
	}

	empty, err := repo.CreateBatch(nil)
	if err != nil || empty != nil {
		t.Fatalf("empty batch should be a no-op, got %v, %v", empty, err)
	}
}

func TestQuestionRepository_GetByInterviewIDOrdered(t *testing.T) {
	repo := newQuestionRepo(t)

	// insert out of display order
	if _, err := repo.CreateBatch([]models.Question{
		{InterviewID: 7, Content: "third", Type: "technical", Position: 3},
		{InterviewID: 7, Content: "first", Type: "technical", Position: 1},
		{InterviewID: 7, Content: "second", Type: "technical", Position: 2},
		{InterviewID: 8, Content: "other interview", Type: "technical", Position: 1},
	}); err != nil {
		t.Fatalf("failed to seed questions: %v", err)
	}

	questions, err := repo.GetByInterviewID(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, content := range []string{"first", "second", "third"} {
		if questions[i].Content != content {
			t.Fatalf("expected %q at index %d, got %q", content, i, questions[i].Content)
		}
	}
}

func TestQuestionRepository_RecordAnswer(t *testing.T) {
	repo := newQuestionRepo(t)

	created, err := repo.CreateBatch([]models.Question{
		{InterviewID: 1, Content: "q", Type: "technical", Position: 1},
	})
	if err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}

	updated, err := repo.RecordAnswer(created[0].ID, "my answer", `{"overallScore":70,"strengths":[],"improvements":[],"suggestedAnswer":"x"}`, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Answered() {
		t.Fatalf("answer, feedback and score must all be set together")
	}
	if *updated.UserAnswer != "my answer" || *updated.Score != 70 {
		t.Fatalf("unexpected stored values: %+v", updated)
	}

	if _, err := repo.RecordAnswer(9999, "x", "{}", 1); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
