package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
}

// SyncProfileRequest reconciles a profile with an external identity
// provider's record after signup (idempotent create-or-patch).
type SyncProfileRequest struct {
	UserID    uuid.UUID `json:"userId" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl"`
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

type ProfileResponse struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	FullName         string     `json:"full_name"`
	AvatarURL        string     `json:"avatar_url"`
	TotalPoints      int        `json:"total_points"`
	QuizzesCompleted int        `json:"quizzes_completed"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastQuizDate     *time.Time `json:"last_quiz_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type LeaderboardResponse struct {
	Success     bool              `json:"success"`
	Leaderboard []ProfileResponse `json:"leaderboard"`
	Total       int               `json:"total"`
}
