package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quiz struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null;index" json:"category"`
	Difficulty  string    `gorm:"not null;index" json:"difficulty"`
	TimeLimit   *int      `json:"time_limit,omitempty"` // seconds
	PassingScore int      `gorm:"not null" json:"passing_score"`
	// TotalQuestions is denormalized and maintained incrementally by
	// question add/delete. It must equal the count of live questions.
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	IsPublished    bool      `gorm:"not null" json:"is_published"`
	CreatedBy      uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
