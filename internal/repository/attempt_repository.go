package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/Brushtail/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByID(id uuid.UUID) (*model.QuizAttempt, error)
	FindAll() ([]model.QuizAttempt, error)
	FindByUserID(userID uuid.UUID) ([]model.QuizAttempt, error)
	FindCompletedByUserID(userID uuid.UUID) ([]model.QuizAttempt, error)
	FindByQuizID(quizID uuid.UUID) ([]model.QuizAttempt, error)
	FindTopScoresByQuizID(quizID uuid.UUID) ([]model.QuizAttempt, error)
	Update(attempt *model.QuizAttempt) error
	Delete(id uuid.UUID) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uuid.UUID) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAll() ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	if err := r.db.Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindByUserID(userID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	if err := r.db.Where("user_id = ?", userID).Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindCompletedByUserID(userID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("user_id = ? AND completed = ?", userID, true).
		Order("completed_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindByQuizID(quizID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	if err := r.db.Where("quiz_id = ?", quizID).Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindTopScoresByQuizID(quizID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("quiz_id = ? AND completed = ?", quizID, true).
		Order("score DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) Update(attempt *model.QuizAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.QuizAttempt{}, "id = ?", id).Error
}
