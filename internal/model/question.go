package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText  string      `gorm:"type:text;not null" json:"question_text"`
	QuestionType  string      `gorm:"not null" json:"question_type"` // "multiple_choice", "true_false", "fill_blank"
	Options       StringSlice `gorm:"type:jsonb" json:"options"`
	CorrectAnswer string      `gorm:"not null" json:"correct_answer"`
	Explanation   string      `gorm:"type:text" json:"explanation"`
	Points        int         `gorm:"not null" json:"points"`
	OrderNumber   int         `gorm:"not null" json:"order_number"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
