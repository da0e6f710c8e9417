package repositories

import (
	"errors"

	"prepmate/server/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository struct {
	DB *gorm.DB
}

// CreateBatch inserts a generated question set in one statement.
func (r *QuestionRepository) CreateBatch(questions []models.Question) ([]models.Question, error) {
	if len(questions) == 0 {
		return nil, nil
	}
	if err := r.DB.Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.DB.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetByInterviewID returns an interview's questions in display order.
func (r *QuestionRepository) GetByInterviewID(interviewID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.DB.Where("interview_id = ?", interviewID).Order("position ASC").Find(&questions).Error
	return questions, err
}

// RecordAnswer persists the answer, its feedback and its score as a single
// atomic update so a question is never left partially answered.
func (r *QuestionRepository) RecordAnswer(id uint, answer, feedback string, score int) (*models.Question, error) {
	result := r.DB.Model(&models.Question{}).Where("id = ?", id).
		Updates(map[string]any{"user_answer": answer, "feedback": feedback, "score": score})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrQuestionNotFound
	}
	return r.GetByID(id)
}
