package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/Brushtail/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByQuizIDOrdered(quizID uuid.UUID) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// OrderNumber defines the display order within a quiz; ties are not
// resolved further.
func (r *questionRepository) FindByQuizIDOrdered(quizID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("order_number ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
