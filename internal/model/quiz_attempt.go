package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizAttempt is one user's response session to a quiz. Completed
// transitions false to true exactly once on submit and the record is
// never re-opened.
type QuizAttempt struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Score          int        `gorm:"not null" json:"score"`
	TotalQuestions int        `gorm:"not null" json:"total_questions"`
	CorrectAnswers int        `gorm:"not null" json:"correct_answers"`
	TimeTaken      *int       `json:"time_taken,omitempty"` // seconds
	Answers        StringMap  `gorm:"type:jsonb" json:"answers"`
	Completed      bool       `gorm:"not null" json:"completed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
