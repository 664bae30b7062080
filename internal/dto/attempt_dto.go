package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartAttemptRequest struct {
	UserID         uuid.UUID `json:"user_id" binding:"required"`
	QuizID         uuid.UUID `json:"quiz_id" binding:"required"`
	TotalQuestions int       `json:"total_questions"`
}

type SubmitAttemptRequest struct {
	Answers        map[string]string `json:"answers"`
	Score          int               `json:"score"`
	CorrectAnswers int               `json:"correct_answers"`
	TimeTaken      *int              `json:"time_taken"`
}

type AttemptResponse struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	QuizID         uuid.UUID         `json:"quiz_id"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	CorrectAnswers int               `json:"correct_answers"`
	TimeTaken      *int              `json:"time_taken,omitempty"`
	Answers        map[string]string `json:"answers"`
	Completed      bool              `json:"completed"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
