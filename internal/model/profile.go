package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds per-user aggregate statistics. Its ID is the owning
// user's ID, so profiles created by an external identity provider and
// profiles created at registration share the same key space.
type Profile struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	FullName         string     `json:"full_name"`
	AvatarURL        string     `json:"avatar_url"`
	TotalPoints      int        `gorm:"not null" json:"total_points"`
	QuizzesCompleted int        `gorm:"not null" json:"quizzes_completed"`
	CurrentStreak    int        `gorm:"not null" json:"current_streak"`
	LongestStreak    int        `gorm:"not null" json:"longest_streak"`
	LastQuizDate     *time.Time `json:"last_quiz_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
