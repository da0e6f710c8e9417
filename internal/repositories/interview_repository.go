package repositories

import (
	"errors"
	"time"

	"prepmate/server/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository struct {
	DB *gorm.DB
}

func (r *InterviewRepository) Create(interview *models.Interview) error {
	return r.DB.Create(interview).Error
}

func (r *InterviewRepository) GetByID(id uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.First(&interview, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// GetByUserID returns a user's interviews, newest first.
func (r *InterviewRepository) GetByUserID(userID uint) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

// Complete marks the interview done and records its aggregate score in one
// update.
func (r *InterviewRepository) Complete(id uint, score int) (*models.Interview, error) {
	result := r.DB.Model(&models.Interview{}).Where("id = ?", id).
		Updates(map[string]any{"completed": true, "score": score})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInterviewNotFound
	}
	return r.GetByID(id)
}

// UserStats aggregates dashboard numbers for one user.
func (r *InterviewRepository) UserStats(userID uint) (*models.StatsResponse, error) {
	interviews, err := r.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	stats := &models.StatsResponse{TotalInterviews: len(interviews)}
	total := 0
	for _, interview := range interviews {
		if !interview.Completed || interview.Score == nil {
			continue
		}
		stats.CompletedInterviews++
		total += *interview.Score
	}
	if stats.CompletedInterviews > 0 {
		stats.AverageScore = (total + stats.CompletedInterviews/2) / stats.CompletedInterviews
	}
	return stats, nil
}

// DeleteAbandonedBefore removes interviews created before the cutoff that
// were never completed and never got any questions. Returns the number of
// rows removed.
func (r *InterviewRepository) DeleteAbandonedBefore(cutoff time.Time) (int64, error) {
	result := r.DB.Where(
		"completed = ? AND created_at < ? AND id NOT IN (?)",
		false, cutoff,
		r.DB.Model(&models.Question{}).Select("interview_id"),
	).Delete(&models.Interview{})
	return result.RowsAffected, result.Error
}
