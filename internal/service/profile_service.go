package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/lshigami/Brushtail/internal/model"
	"github.com/lshigami/Brushtail/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetAllProfiles() ([]dto.ProfileResponse, error)
	GetProfileByID(id uuid.UUID) (*dto.ProfileResponse, error)
	GetProfileByEmail(email string) (*dto.ProfileResponse, error)
	CreateProfile(req dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	SyncProfile(req dto.SyncProfileRequest) (*dto.ProfileResponse, error)
	UpdateProfile(id uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteProfile(id uuid.UUID) error
	UpdateStats(userID uuid.UUID, points int, completed bool) error
	GetLeaderboard(limit int) ([]dto.ProfileResponse, error)
	GetStreakLeaderboard(limit int) ([]dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, now: time.Now}
}

func (s *profileService) GetAllProfiles() ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.ProfileResponse
	copier.Copy(&resp, &profiles)
	return resp, nil
}

func (s *profileService) GetProfileByID(id uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, profile)
	return &resp, nil
}

func (s *profileService) GetProfileByEmail(email string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, profile)
	return &resp, nil
}

func (s *profileService) CreateProfile(req dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	profile := model.Profile{
		ID:        req.ID,
		Email:     req.Email,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	}
	if err := s.profileRepo.Create(&profile); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create profile")
		return nil, err
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, &profile)
	return &resp, nil
}

// SyncProfile reconciles the profile row with an external signup record.
// It creates the profile when absent; when present it patches only
// FullName and AvatarURL, and only when they actually differ.
func (s *profileService) SyncProfile(req dto.SyncProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(req.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		log.Info().Str("email", req.Email).Msg("Creating profile on sync")
		created := model.Profile{
			ID:        req.UserID,
			Email:     req.Email,
			FullName:  req.FullName,
			AvatarURL: req.AvatarURL,
		}
		if err := s.profileRepo.Create(&created); err != nil {
			return nil, err
		}
		var resp dto.ProfileResponse
		copier.Copy(&resp, &created)
		return &resp, nil
	}

	updated := false
	if req.FullName != "" && req.FullName != profile.FullName {
		profile.FullName = req.FullName
		updated = true
	}
	if req.AvatarURL != "" && req.AvatarURL != profile.AvatarURL {
		profile.AvatarURL = req.AvatarURL
		updated = true
	}
	if updated {
		profile.UpdatedAt = s.now()
		if err := s.profileRepo.Update(profile); err != nil {
			return nil, err
		}
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, profile)
	return &resp, nil
}

func (s *profileService) UpdateProfile(id uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}
	profile.UpdatedAt = s.now()
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, profile)
	return &resp, nil
}

func (s *profileService) DeleteProfile(id uuid.UUID) error {
	return s.profileRepo.Delete(id)
}

// UpdateStats credits points to the profile and, for completed quizzes,
// advances the completion counter and the calendar-day streak.
func (s *profileService) UpdateStats(userID uuid.UUID, points int, completed bool) error {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	profile.TotalPoints += points

	if completed {
		profile.QuizzesCompleted++
		applyStreak(profile, s.now())
	}

	profile.UpdatedAt = s.now()
	if err := s.profileRepo.Update(profile); err != nil {
		log.Error().Err(err).Str("userId", userID.String()).Msg("Failed to persist profile stats")
		return err
	}
	return nil
}

// applyStreak advances the streak counters against calendar dates, not
// rolling 24h windows. Three mutually exclusive cases: last quiz was
// yesterday extends the streak, last quiz was today leaves it unchanged,
// anything older or no quiz yet resets it to 1.
func applyStreak(profile *model.Profile, now time.Time) {
	switch {
	case profile.LastQuizDate != nil && sameDay(*profile.LastQuizDate, now.AddDate(0, 0, -1)):
		profile.CurrentStreak++
	case profile.LastQuizDate == nil || !sameDay(*profile.LastQuizDate, now):
		profile.CurrentStreak = 1
	}
	if profile.CurrentStreak > profile.LongestStreak {
		profile.LongestStreak = profile.CurrentStreak
	}
	profile.LastQuizDate = &now
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *profileService) GetLeaderboard(limit int) ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAllByTotalPointsDesc()
	if err != nil {
		return nil, err
	}
	return truncateProfiles(profiles, limit), nil
}

func (s *profileService) GetStreakLeaderboard(limit int) ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAllByCurrentStreakDesc()
	if err != nil {
		return nil, err
	}
	return truncateProfiles(profiles, limit), nil
}

// limit <= 0 means no cap.
func truncateProfiles(profiles []model.Profile, limit int) []dto.ProfileResponse {
	if limit > 0 && limit < len(profiles) {
		profiles = profiles[:limit]
	}
	var resp []dto.ProfileResponse
	copier.Copy(&resp, &profiles)
	return resp
}
