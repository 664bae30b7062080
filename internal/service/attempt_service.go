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

type AttemptService interface {
	GetAllAttempts() ([]dto.AttemptResponse, error)
	GetAttemptByID(id uuid.UUID) (*dto.AttemptResponse, error)
	GetAttemptsByUser(userID uuid.UUID) ([]dto.AttemptResponse, error)
	GetCompletedAttemptsByUser(userID uuid.UUID) ([]dto.AttemptResponse, error)
	GetAttemptsByQuiz(quizID uuid.UUID) ([]dto.AttemptResponse, error)
	GetTopScoresByQuiz(quizID uuid.UUID) ([]dto.AttemptResponse, error)
	StartAttempt(req dto.StartAttemptRequest) (*dto.AttemptResponse, error)
	SubmitAttempt(id uuid.UUID, req dto.SubmitAttemptRequest) (*dto.AttemptResponse, error)
	DeleteAttempt(id uuid.UUID) error
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
	profileSvc  ProfileService
}

func NewAttemptService(attemptRepo repository.AttemptRepository, profileSvc ProfileService) AttemptService {
	return &attemptService{attemptRepo: attemptRepo, profileSvc: profileSvc}
}

func (s *attemptService) GetAllAttempts() ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return attemptsToResponses(attempts), nil
}

func (s *attemptService) GetAttemptByID(id uuid.UUID) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	resp := attemptToResponse(attempt)
	return &resp, nil
}

func (s *attemptService) GetAttemptsByUser(userID uuid.UUID) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return attemptsToResponses(attempts), nil
}

func (s *attemptService) GetCompletedAttemptsByUser(userID uuid.UUID) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindCompletedByUserID(userID)
	if err != nil {
		return nil, err
	}
	return attemptsToResponses(attempts), nil
}

func (s *attemptService) GetAttemptsByQuiz(quizID uuid.UUID) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, err
	}
	return attemptsToResponses(attempts), nil
}

func (s *attemptService) GetTopScoresByQuiz(quizID uuid.UUID) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindTopScoresByQuizID(quizID)
	if err != nil {
		return nil, err
	}
	return attemptsToResponses(attempts), nil
}

// StartAttempt records a new incomplete attempt. The referenced quiz and
// user are not validated here.
func (s *attemptService) StartAttempt(req dto.StartAttemptRequest) (*dto.AttemptResponse, error) {
	attempt := model.QuizAttempt{
		UserID:         req.UserID,
		QuizID:         req.QuizID,
		TotalQuestions: req.TotalQuestions,
		Completed:      false,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("userId", req.UserID.String()).Msg("Failed to start attempt")
		return nil, err
	}
	resp := attemptToResponse(&attempt)
	return &resp, nil
}

// SubmitAttempt finalizes the attempt and then credits the owner's
// profile. The attempt write and the profile write are two independent
// transactions; a failure between them leaves the attempt completed
// without the profile being credited.
func (s *attemptService) SubmitAttempt(id uuid.UUID, req dto.SubmitAttemptRequest) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}

	now := time.Now()
	attempt.Answers = model.StringMap(req.Answers)
	attempt.Score = req.Score
	attempt.CorrectAnswers = req.CorrectAnswers
	attempt.TimeTaken = req.TimeTaken
	attempt.Completed = true
	attempt.CompletedAt = &now

	if err := s.attemptRepo.Update(attempt); err != nil {
		log.Error().Err(err).Str("attemptId", id.String()).Msg("Failed to persist submitted attempt")
		return nil, err
	}

	if err := s.profileSvc.UpdateStats(attempt.UserID, attempt.Score, true); err != nil {
		log.Error().Err(err).Str("userId", attempt.UserID.String()).Msg("Failed to update profile stats after submission")
		return nil, err
	}

	resp := attemptToResponse(attempt)
	return &resp, nil
}

func (s *attemptService) DeleteAttempt(id uuid.UUID) error {
	return s.attemptRepo.Delete(id)
}

func attemptToResponse(a *model.QuizAttempt) dto.AttemptResponse {
	var resp dto.AttemptResponse
	copier.Copy(&resp, a)
	resp.Answers = map[string]string(a.Answers)
	return resp
}

func attemptsToResponses(attempts []model.QuizAttempt) []dto.AttemptResponse {
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		resp = append(resp, attemptToResponse(&attempts[i]))
	}
	return resp
}
