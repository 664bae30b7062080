package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/Brushtail/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uuid.UUID) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindByPublished(published bool) ([]model.Quiz, error)
	FindByCategory(category string) ([]model.Quiz, error)
	FindByDifficulty(difficulty string) ([]model.Quiz, error)
	FindByCreatedBy(createdBy uuid.UUID) ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByPublished(published bool) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("is_published = ?", published).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByCategory(category string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("category = ?", category).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByDifficulty(difficulty string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("difficulty = ?", difficulty).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByCreatedBy(createdBy uuid.UUID) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("created_by = ?", createdBy).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}
