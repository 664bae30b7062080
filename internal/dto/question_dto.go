package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuestionRequest struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	QuestionType  string   `json:"question_type" binding:"required,oneof=multiple_choice true_false fill_blank"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Explanation   string   `json:"explanation"`
	Points        *int     `json:"points"`
	OrderNumber   int      `json:"order_number"`
}

type QuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	QuestionText  string    `json:"question_text"`
	QuestionType  string    `json:"question_type"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	Points        int       `json:"points"`
	OrderNumber   int       `json:"order_number"`
	CreatedAt     time.Time `json:"created_at"`
}
