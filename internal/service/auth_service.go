package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/lshigami/Brushtail/internal/model"
	"github.com/lshigami/Brushtail/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	ValidateToken(token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	db       *gorm.DB // user and profile rows are created in one transaction
}

func NewAuthService(userRepo repository.UserRepository, db *gorm.DB) AuthService {
	return &authService{userRepo: userRepo, db: db}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:         req.Email,
		PasswordHash:  string(hash),
		FullName:      req.FullName,
		IsActive:      true,
		EmailVerified: true, // no verification flow yet
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := model.Profile{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to register user")
		return nil, err
	}

	log.Info().Str("email", user.Email).Str("userId", user.ID.String()).Msg("User registered")

	return &dto.AuthResponse{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Token:    generateToken(&user),
	}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Msg("User logged in")

	return &dto.AuthResponse{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Token:    generateToken(user),
	}, nil
}

// ValidateToken resolves a token back to its user. All decoding and
// lookup failures collapse to ErrInvalidToken so callers cannot probe
// the token format.
func (s *authService) ValidateToken(token string) (*model.User, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	parts := strings.Split(string(decoded), ":")
	if len(parts) < 2 {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.Warn().Err(err).Msg("Token resolved to unknown user")
		return nil, ErrInvalidToken
	}
	return user, nil
}

// generateToken encodes userId:email:unixMillis. The token is not
// signed and carries no enforced expiry; the timestamp is informational
// only. Kept for wire compatibility with existing clients.
func generateToken(user *model.User) string {
	data := fmt.Sprintf("%s:%s:%d", user.ID, user.Email, time.Now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(data))
}
