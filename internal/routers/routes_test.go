package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prepmate/server/internal/fallback"
	"prepmate/server/internal/handlers"
	"prepmate/server/internal/interview"
	"prepmate/server/internal/llm"
	"prepmate/server/internal/models"
	"prepmate/server/internal/repositories"
	"prepmate/server/internal/testhelpers"
)

const testSecret = "routes-test-secret"

// unconfiguredProvider behaves like a client with no API key: every call
// fails, forcing the heuristic fallback.
type unconfiguredProvider struct {
	rotatedKey string
}

func (p *unconfiguredProvider) GenerateQuestions(ctx context.Context, role, questionType, difficulty string, count int) ([]string, error) {
	return nil, &llm.ProviderError{Provider: "test", Code: llm.ErrCodeAPIKey, Message: "No API key configured"}
}

func (p *unconfiguredProvider) EvaluateAnswer(ctx context.Context, question, answer, role, questionType, difficulty string) (*models.FeedbackContent, error) {
	return nil, &llm.ProviderError{Provider: "test", Code: llm.ErrCodeAPIKey, Message: "No API key configured"}
}

func (p *unconfiguredProvider) Probe(ctx context.Context) error {
	return &llm.ProviderError{Provider: "test", Code: llm.ErrCodeAPIKey, Message: "No API key configured"}
}

func (p *unconfiguredProvider) RotateCredential(apiKey string) error {
	p.rotatedKey = apiKey
	return nil
}

func (p *unconfiguredProvider) GetProviderName() string { return "test" }

func newTestRouter(t *testing.T) (*chi.Mux, *unconfiguredProvider) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	logger := zap.NewNop()

	userRepo := &repositories.UserRepository{DB: db}
	interviewRepo := &repositories.InterviewRepository{DB: db}
	questionRepo := &repositories.QuestionRepository{DB: db}

	provider := &unconfiguredProvider{}
	service := interview.NewService(interviewRepo, questionRepo, provider, logger, time.Second)

	router := chi.NewRouter()
	HealthRoutes(router, handlers.NewHealthHandler(provider, db))
	AuthRoutes(router, handlers.NewAuthHandler(userRepo, testSecret, logger), testSecret)
	InterviewRoutes(router, handlers.NewInterviewHandler(service, logger), handlers.NewQuestionHandler(service, logger), testSecret)
	ProviderRoutes(router, handlers.NewProviderHandler(provider, logger), testSecret)
	return router, provider
}

func do(router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	rec := do(router, http.MethodPost, "/api/auth/register", "",
		`{"username":"`+username+`","password":"supersecret","firstName":"T","lastName":"U"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}
	return resp.Token
}

func createInterview(t *testing.T, router http.Handler, token string) uint {
	t.Helper()
	rec := do(router, http.MethodPost, "/api/interviews", token,
		`{"role":"software-engineer","difficulty":"easy","questionType":"technical"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create interview failed: %d %s", rec.Code, rec.Body.String())
	}
	var created models.Interview
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode interview: %v", err)
	}
	return created.ID
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	if rec := do(router, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/readyz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(router, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}

func TestInterviewEndpointsRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	targets := []struct{ method, path string }{
		{http.MethodGet, "/api/interviews"},
		{http.MethodPost, "/api/interviews"},
		{http.MethodGet, "/api/interviews/1"},
		{http.MethodPost, "/api/interviews/1/complete"},
		{http.MethodPost, "/api/questions/1/answer"},
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/settings/api-key/status"},
	}
	for _, target := range targets {
		if rec := do(router, target.method, target.path, "", "{}"); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", target.method, target.path, rec.Code)
		}
	}
}

func TestInterviewLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")
	interviewID := createInterview(t, router, token)

	// generate three questions with no provider credential configured:
	// expect exactly the first three fallback-table entries, in order
	rec := do(router, http.MethodPost, "/api/interviews/1/questions/generate", token, `{"count":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate failed: %d %s", rec.Code, rec.Body.String())
	}
	var questions []models.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &questions); err != nil {
		t.Fatalf("failed to decode questions: %v", err)
	}
	want := fallback.Questions("software-engineer", "technical", "easy", 3)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i := range questions {
		if questions[i].Content != want[i] {
			t.Fatalf("question %d: expected %q, got %q", i, want[i], questions[i].Content)
		}
	}

	// repeat generation returns the same set
	rec = do(router, http.MethodPost, "/api/interviews/1/questions/generate", token, `{"count":3}`)
	var again []models.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &again); err != nil {
		t.Fatalf("failed to decode questions: %v", err)
	}
	if len(again) != 3 || again[0].ID != questions[0].ID {
		t.Fatalf("repeat generation must return the existing set")
	}

	// answer the first question; triple comes back populated
	rec = do(router, http.MethodPost, "/api/questions/1/answer", token, `{"answer":"A stack is LIFO and a queue is FIFO."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("answer failed: %d %s", rec.Code, rec.Body.String())
	}
	var answered struct {
		UserAnswer *string                 `json:"userAnswer"`
		Feedback   *models.FeedbackContent `json:"feedback"`
		Score      *int                    `json:"score"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &answered); err != nil {
		t.Fatalf("failed to decode answer response: %v", err)
	}
	if answered.UserAnswer == nil || answered.Feedback == nil || answered.Score == nil {
		t.Fatalf("expected userAnswer, feedback and score all set: %s", rec.Body.String())
	}
	if *answered.Score < 0 || *answered.Score > 100 {
		t.Fatalf("score %d out of bounds", *answered.Score)
	}

	// complete; score is the mean of the single answered question
	rec = do(router, http.MethodPost, "/api/interviews/1/complete", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("complete failed: %d %s", rec.Code, rec.Body.String())
	}
	var completed models.Interview
	if err := json.Unmarshal(rec.Body.Bytes(), &completed); err != nil {
		t.Fatalf("failed to decode interview: %v", err)
	}
	if !completed.Completed || completed.Score == nil || *completed.Score != *answered.Score {
		t.Fatalf("unexpected completion state: %s", rec.Body.String())
	}

	// terminal: completing again conflicts
	if rec = do(router, http.MethodPost, "/api/interviews/1/complete", token, ""); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double completion, got %d", rec.Code)
	}

	// stats reflect the completed interview
	rec = do(router, http.MethodGet, "/api/stats", token, "")
	var stats models.StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.TotalInterviews != 1 || stats.CompletedInterviews != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	_ = interviewID
}

func TestOwnershipEnforcedOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	owner := registerAndLogin(t, router, "owner")
	intruder := registerAndLogin(t, router, "intruder")
	createInterview(t, router, owner)

	cases := []struct{ method, path, body string }{
		{http.MethodGet, "/api/interviews/1", ""},
		{http.MethodGet, "/api/interviews/1/questions", ""},
		{http.MethodPost, "/api/interviews/1/questions/generate", `{"count":3}`},
		{http.MethodPost, "/api/interviews/1/complete", ""},
	}
	for _, tc := range cases {
		rec := do(router, tc.method, tc.path, intruder, tc.body)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 for foreign user, got %d", tc.method, tc.path, rec.Code)
		}
		if bytes.Contains(rec.Body.Bytes(), []byte("software-engineer")) {
			t.Fatalf("%s %s: interview data leaked to foreign user", tc.method, tc.path)
		}
	}

	// the listing only shows the caller's interviews
	rec := do(router, http.MethodGet, "/api/interviews", intruder, "")
	var interviews []models.Interview
	if err := json.Unmarshal(rec.Body.Bytes(), &interviews); err != nil {
		t.Fatalf("failed to decode interviews: %v", err)
	}
	if len(interviews) != 0 {
		t.Fatalf("intruder must not see foreign interviews, got %d", len(interviews))
	}
}

func TestProviderKeyEndpoints(t *testing.T) {
	router, provider := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	t.Run("status reports invalid credential", func(t *testing.T) {
		rec := do(router, http.MethodGet, "/api/settings/api-key/status", token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var status models.KeyStatusResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("failed to decode status: %v", err)
		}
		if status.Valid {
			t.Fatalf("probe failure must report invalid")
		}
	})

	t.Run("rejects malformed key", func(t *testing.T) {
		rec := do(router, http.MethodPut, "/api/settings/api-key", token, `{"apiKey":"sk-wrong-format-key"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("accepts well-formed key", func(t *testing.T) {
		rec := do(router, http.MethodPut, "/api/settings/api-key", token, `{"apiKey":"AIzaSyDummyKey1234567890"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if provider.rotatedKey != "AIzaSyDummyKey1234567890" {
			t.Fatalf("rotation did not reach the provider")
		}
	})
}

func TestCreateInterviewValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	rec := do(router, http.MethodPost, "/api/interviews", token,
		`{"role":"wizard","difficulty":"easy","questionType":"technical"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", rec.Code)
	}
	var errResp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if errResp.Code != "unsupported_role" {
		t.Fatalf("expected unsupported_role, got %q", errResp.Code)
	}
}
