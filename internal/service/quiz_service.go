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

const (
	defaultPassingScore   = 70
	defaultQuestionPoints = 10
)

type QuizService interface {
	GetAllQuizzes() ([]dto.QuizResponse, error)
	GetPublishedQuizzes() ([]dto.QuizResponse, error)
	GetQuizByID(id uuid.UUID) (*dto.QuizResponse, error)
	GetQuizzesByCategory(category string) ([]dto.QuizResponse, error)
	GetQuizzesByDifficulty(difficulty string) ([]dto.QuizResponse, error)
	GetQuizzesByCreator(createdBy uuid.UUID) ([]dto.QuizResponse, error)
	CreateQuiz(req dto.CreateQuizRequest) (*dto.QuizResponse, error)
	UpdateQuiz(id uuid.UUID, req dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(id uuid.UUID) error
	GetQuizQuestions(quizID uuid.UUID) ([]dto.QuestionResponse, error)
	AddQuestion(quizID uuid.UUID, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(questionID uuid.UUID) error
}

type quizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB // question writes update the owning quiz in one transaction
}

func NewQuizService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository, db *gorm.DB) QuizService {
	return &quizService{quizRepo: quizRepo, questionRepo: questionRepo, db: db}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.QuizResponse
	copier.Copy(&resp, &quizzes)
	return resp, nil
}

func (s *quizService) GetPublishedQuizzes() ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindByPublished(true)
	if err != nil {
		return nil, err
	}
	var resp []dto.QuizResponse
	copier.Copy(&resp, &quizzes)
	return resp, nil
}

func (s *quizService) GetQuizByID(id uuid.UUID) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	var resp dto.QuizResponse
	copier.Copy(&resp, quiz)
	return &resp, nil
}

func (s *quizService) GetQuizzesByCategory(category string) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindByCategory(category)
	if err != nil {
		return nil, err
	}
	var resp []dto.QuizResponse
	copier.Copy(&resp, &quizzes)
	return resp, nil
}

func (s *quizService) GetQuizzesByDifficulty(difficulty string) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindByDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	var resp []dto.QuizResponse
	copier.Copy(&resp, &quizzes)
	return resp, nil
}

func (s *quizService) GetQuizzesByCreator(createdBy uuid.UUID) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindByCreatedBy(createdBy)
	if err != nil {
		return nil, err
	}
	var resp []dto.QuizResponse
	copier.Copy(&resp, &quizzes)
	return resp, nil
}

func (s *quizService) CreateQuiz(req dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	quiz := model.Quiz{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		TimeLimit:    req.TimeLimit,
		PassingScore: defaultPassingScore,
		IsPublished:  req.IsPublished,
		CreatedBy:    req.CreatedBy,
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz")
		return nil, err
	}
	var resp dto.QuizResponse
	copier.Copy(&resp, &quiz)
	return &resp, nil
}

func (s *quizService) UpdateQuiz(id uuid.UUID, req dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.Category != nil {
		quiz.Category = *req.Category
	}
	if req.Difficulty != nil {
		quiz.Difficulty = *req.Difficulty
	}
	if req.TimeLimit != nil {
		quiz.TimeLimit = req.TimeLimit
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.IsPublished != nil {
		quiz.IsPublished = *req.IsPublished
	}
	quiz.UpdatedAt = time.Now()

	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, err
	}
	var resp dto.QuizResponse
	copier.Copy(&resp, quiz)
	return &resp, nil
}

// DeleteQuiz removes the quiz and its questions. The cascade is manual,
// not a database constraint.
func (s *quizService) DeleteQuiz(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
}

func (s *quizService) GetQuizQuestions(quizID uuid.UUID) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindByQuizIDOrdered(quizID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, questionToResponse(&questions[i]))
	}
	return resp, nil
}

// AddQuestion persists the question and bumps the owning quiz's
// denormalized question count in the same transaction.
func (s *quizService) AddQuestion(quizID uuid.UUID, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		QuestionType:  req.QuestionType,
		Options:       model.StringSlice(req.Options),
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Points:        defaultQuestionPoints,
		OrderNumber:   req.OrderNumber,
	}
	if req.Points != nil {
		question.Points = *req.Points
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.First(&quiz, "id = ?", quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuizNotFound
			}
			return err
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		quiz.TotalQuestions++
		quiz.UpdatedAt = time.Now()
		return tx.Save(&quiz).Error
	})
	if err != nil {
		log.Error().Err(err).Str("quizId", quizID.String()).Msg("Failed to add question")
		return nil, err
	}

	resp := questionToResponse(&question)
	return &resp, nil
}

// DeleteQuestion removes the question and decrements the owning quiz's
// count, floored at 0.
func (s *quizService) DeleteQuestion(questionID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		if err := tx.First(&question, "id = ?", questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestionNotFound
			}
			return err
		}
		if err := tx.Delete(&model.Question{}, "id = ?", questionID).Error; err != nil {
			return err
		}

		var quiz model.Quiz
		if err := tx.First(&quiz, "id = ?", question.QuizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuizNotFound
			}
			return err
		}
		decrementQuestionCount(&quiz)
		quiz.UpdatedAt = time.Now()
		return tx.Save(&quiz).Error
	})
}

// decrementQuestionCount lowers the denormalized count, floored at 0 in
// case it has drifted from the real number of rows.
func decrementQuestionCount(quiz *model.Quiz) {
	if quiz.TotalQuestions > 0 {
		quiz.TotalQuestions--
	}
}

func questionToResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	resp.Options = []string(q.Options)
	return resp
}
