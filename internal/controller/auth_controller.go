package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/rs/zerolog/log"
)

// RegisterHandler godoc
// @Summary Register a new user
// @Description Creates a user account and its zero-valued profile, returns an auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate email"
// @Router /auth/register [post]
func (ctrl *Controller) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RegisterRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.authSvc.Register(req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler godoc
// @Summary Log in
// @Description Verifies credentials and returns an auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Bad credentials or deactivated account"
// @Router /auth/login [post]
func (ctrl *Controller) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.authSvc.Login(req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateTokenHandler godoc
// @Summary Validate an auth token
// @Description Resolves the Bearer token to a user. Failures are collapsed to a uniform invalid response.
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ValidateResponse
// @Failure 401 {object} dto.ValidateResponse
// @Router /auth/validate [get]
func (ctrl *Controller) ValidateTokenHandler(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	user, err := ctrl.authSvc.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ValidateResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, dto.ValidateResponse{Valid: true, Email: user.Email})
}
