package models

import (
	"strings"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// implements the Validator interface
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return &ErrorResponse{Code: "missing_username", Message: "Username field is required"}
	}
	if len(r.Password) < 8 {
		return &ErrorResponse{Code: "weak_password", Message: "Password must be at least 8 characters"}
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return &ErrorResponse{Code: "missing_name", Message: "First and last name are required"}
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return &ErrorResponse{Code: "missing_credentials", Message: "Username and password are required"}
	}
	return nil
}

type CreateInterviewRequest struct {
	Role         string `json:"role"`
	Difficulty   string `json:"difficulty"`
	QuestionType string `json:"questionType"`
}

func (r *CreateInterviewRequest) Validate() error {
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.QuestionType = strings.ToLower(strings.TrimSpace(r.QuestionType))

	if r.Role == "" {
		return &ErrorResponse{Code: "missing_role", Message: "Role field is required"}
	}
	if !SupportedRoles[r.Role] {
		return &ErrorResponse{
			Code:    "unsupported_role",
			Message: "Role not supported. Supported roles: " + strings.Join(SupportedRolesList(), ", "),
		}
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: " + strings.Join(ValidDifficultiesList(), ", "),
		}
	}
	if !ValidQuestionTypes[r.QuestionType] {
		return &ErrorResponse{
			Code:    "invalid_question_type",
			Message: "Question type must be one of: " + strings.Join(ValidQuestionTypesList(), ", "),
		}
	}
	return nil
}

type GenerateQuestionsRequest struct {
	Count int `json:"count"`
}

const (
	DefaultQuestionCount = 5
	MaxQuestionCount     = 10
)

func (r *GenerateQuestionsRequest) Validate() error {
	if r.Count == 0 {
		r.Count = DefaultQuestionCount
	}
	if r.Count < 1 || r.Count > MaxQuestionCount {
		return &ErrorResponse{
			Code:    "invalid_count",
			Message: "Count must be between 1 and 10",
		}
	}
	return nil
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "Answer field is required"}
	}
	return nil
}

// geminiKeyPrefix is the fixed prefix of Google AI Studio API keys.
const geminiKeyPrefix = "AIza"

type UpdateAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

func (r *UpdateAPIKeyRequest) Validate() error {
	r.APIKey = strings.TrimSpace(r.APIKey)
	if r.APIKey == "" {
		return &ErrorResponse{Code: "missing_api_key", Message: "API key field is required"}
	}
	if !strings.HasPrefix(r.APIKey, geminiKeyPrefix) || len(r.APIKey) < 20 {
		return &ErrorResponse{
			Code:    "invalid_api_key_format",
			Message: "API key must start with \"AIza\" and be at least 20 characters",
		}
	}
	return nil
}
