package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/Brushtail/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	FindByID(id uuid.UUID) (*model.Profile, error)
	FindByEmail(email string) (*model.Profile, error)
	FindAll() ([]model.Profile, error)
	FindAllByTotalPointsDesc() ([]model.Profile, error)
	FindAllByCurrentStreakDesc() ([]model.Profile, error)
	Update(profile *model.Profile) error
	Delete(id uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByID(id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll() ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Ties are returned in whatever order Postgres yields them; there is no
// secondary sort key.
func (r *profileRepository) FindAllByTotalPointsDesc() ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.Order("total_points DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) FindAllByCurrentStreakDesc() ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.Order("current_streak DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Profile{}, "id = ?", id).Error
}
