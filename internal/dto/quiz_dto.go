package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Category     string    `json:"category" binding:"required"`
	Difficulty   string    `json:"difficulty" binding:"required,oneof=easy medium hard"`
	TimeLimit    *int      `json:"time_limit"`
	PassingScore *int      `json:"passing_score"`
	IsPublished  bool      `json:"is_published"`
	CreatedBy    uuid.UUID `json:"created_by" binding:"required"`
}

// UpdateQuizRequest patches only the supplied fields.
type UpdateQuizRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Difficulty   *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	TimeLimit    *int    `json:"time_limit"`
	PassingScore *int    `json:"passing_score"`
	IsPublished  *bool   `json:"is_published"`
}

type QuizResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	Difficulty     string    `json:"difficulty"`
	TimeLimit      *int      `json:"time_limit,omitempty"`
	PassingScore   int       `json:"passing_score"`
	TotalQuestions int       `json:"total_questions"`
	IsPublished    bool      `json:"is_published"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
