package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Question is one prompt within an interview. UserAnswer, Feedback and Score
// are nil until an answer is submitted, then all three are set in a single
// update and never change again.
type Question struct {
	gorm.Model
	InterviewID uint    `gorm:"not null;index" json:"interviewId"`
	Content     string  `gorm:"type:text;not null" json:"content"`
	Type        string  `gorm:"not null" json:"type"`
	Position    int     `gorm:"not null" json:"order"`
	UserAnswer  *string `gorm:"type:text" json:"userAnswer"`
	Feedback    *string `gorm:"type:text" json:"-"`
	Score       *int    `json:"score"`
}

// Answered reports whether an answer has been recorded for this question.
func (q *Question) Answered() bool {
	return q.UserAnswer != nil && q.Feedback != nil && q.Score != nil
}

// FeedbackContent decodes the stored feedback column. Returns nil when the
// question has not been answered yet.
func (q *Question) FeedbackContent() (*FeedbackContent, error) {
	if q.Feedback == nil {
		return nil, nil
	}
	var content FeedbackContent
	if err := json.Unmarshal([]byte(*q.Feedback), &content); err != nil {
		return nil, fmt.Errorf("failed to decode stored feedback: %w", err)
	}
	return &content, nil
}

// SetFeedback encodes the feedback value object into the stored column.
func (q *Question) SetFeedback(content *FeedbackContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode feedback: %w", err)
	}
	encoded := string(data)
	q.Feedback = &encoded
	return nil
}

// MarshalJSON inlines the decoded feedback object so API clients never see
// the serialized column form.
func (q Question) MarshalJSON() ([]byte, error) {
	type alias Question
	feedback, err := q.FeedbackContent()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		alias
		Feedback *FeedbackContent `json:"feedback"`
	}{alias(q), feedback})
}
