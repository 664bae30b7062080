package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetAllAttemptsHandler godoc
// @Summary Get all attempts
// @Tags attempts
// @Produce json
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts/all [get]
func (ctrl *Controller) GetAllAttemptsHandler(c *gin.Context) {
	attempts, err := ctrl.attemptSvc.GetAllAttempts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetAttemptHandler godoc
// @Summary Get an attempt by ID
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id} [get]
func (ctrl *Controller) GetAttemptHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	attempt, err := ctrl.attemptSvc.GetAttemptByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// GetUserAttemptsHandler godoc
// @Summary Get a user's attempts
// @Tags attempts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts/user/{userId} [get]
func (ctrl *Controller) GetUserAttemptsHandler(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	attempts, err := ctrl.attemptSvc.GetAttemptsByUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetUserCompletedAttemptsHandler godoc
// @Summary Get a user's completed attempts, most recent first
// @Tags attempts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts/user/{userId}/completed [get]
func (ctrl *Controller) GetUserCompletedAttemptsHandler(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	attempts, err := ctrl.attemptSvc.GetCompletedAttemptsByUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetQuizAttemptsHandler godoc
// @Summary Get all attempts for a quiz
// @Tags attempts
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts/quiz/{quizId} [get]
func (ctrl *Controller) GetQuizAttemptsHandler(c *gin.Context) {
	quizID, ok := parseUUIDParam(c, "quizId")
	if !ok {
		return
	}
	attempts, err := ctrl.attemptSvc.GetAttemptsByQuiz(quizID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetTopScoresHandler godoc
// @Summary Get completed attempts for a quiz ordered by score
// @Tags attempts
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts/quiz/{quizId}/top-scores [get]
func (ctrl *Controller) GetTopScoresHandler(c *gin.Context) {
	quizID, ok := parseUUIDParam(c, "quizId")
	if !ok {
		return
	}
	attempts, err := ctrl.attemptSvc.GetTopScoresByQuiz(quizID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// StartAttemptHandler godoc
// @Summary Start a new attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body dto.StartAttemptRequest true "Attempt data"
// @Success 201 {object} dto.AttemptResponse
// @Router /attempts/start [post]
func (ctrl *Controller) StartAttemptHandler(c *gin.Context) {
	var req dto.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartAttemptRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	attempt, err := ctrl.attemptSvc.StartAttempt(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// SubmitAttemptHandler godoc
// @Summary Submit an attempt
// @Description Finalizes the attempt and credits the owner's profile stats
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param submission body dto.SubmitAttemptRequest true "Submitted answers and score"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id}/submit [put]
func (ctrl *Controller) SubmitAttemptHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	attempt, err := ctrl.attemptSvc.SubmitAttempt(id, req)
	if err != nil {
		log.Error().Err(err).Str("attemptId", id.String()).Msg("Failed to submit attempt")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// DeleteAttemptHandler godoc
// @Summary Delete an attempt
// @Tags attempts
// @Param id path string true "Attempt ID"
// @Success 204 "No Content"
// @Router /attempts/{id} [delete]
func (ctrl *Controller) DeleteAttemptHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.attemptSvc.DeleteAttempt(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
