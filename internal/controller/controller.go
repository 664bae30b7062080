package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/lshigami/Brushtail/internal/service"
)

type Controller struct {
	authSvc    service.AuthService
	quizSvc    service.QuizService
	attemptSvc service.AttemptService
	profileSvc service.ProfileService
}

func NewController(
	authSvc service.AuthService,
	quizSvc service.QuizService,
	attemptSvc service.AttemptService,
	profileSvc service.ProfileService,
) *Controller {
	return &Controller{
		authSvc:    authSvc,
		quizSvc:    quizSvc,
		attemptSvc: attemptSvc,
		profileSvc: profileSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.HealthHandler)
	router.GET("/", ctrl.RootHandler)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", ctrl.RegisterHandler)
		auth.POST("/login", ctrl.LoginHandler)
		auth.GET("/validate", ctrl.ValidateTokenHandler)

		quiz := api.Group("/quiz")
		quiz.GET("/all", ctrl.GetAllQuizzesHandler)
		quiz.GET("/published", ctrl.GetPublishedQuizzesHandler)
		quiz.GET("/:id", ctrl.GetQuizHandler)
		quiz.GET("/category/:category", ctrl.GetQuizzesByCategoryHandler)
		quiz.GET("/difficulty/:difficulty", ctrl.GetQuizzesByDifficultyHandler)
		quiz.GET("/creator/:createdBy", ctrl.GetQuizzesByCreatorHandler)
		quiz.POST("/create", ctrl.CreateQuizHandler)
		quiz.PUT("/:id", ctrl.UpdateQuizHandler)
		quiz.DELETE("/:id", ctrl.DeleteQuizHandler)
		quiz.GET("/:id/questions", ctrl.GetQuizQuestionsHandler)
		quiz.POST("/:id/questions", ctrl.AddQuestionHandler)
		quiz.DELETE("/questions/:questionId", ctrl.DeleteQuestionHandler)

		attempts := api.Group("/attempts")
		attempts.GET("/all", ctrl.GetAllAttemptsHandler)
		attempts.GET("/:id", ctrl.GetAttemptHandler)
		attempts.GET("/user/:userId", ctrl.GetUserAttemptsHandler)
		attempts.GET("/user/:userId/completed", ctrl.GetUserCompletedAttemptsHandler)
		attempts.GET("/quiz/:quizId", ctrl.GetQuizAttemptsHandler)
		attempts.GET("/quiz/:quizId/top-scores", ctrl.GetTopScoresHandler)
		attempts.POST("/start", ctrl.StartAttemptHandler)
		attempts.PUT("/:id/submit", ctrl.SubmitAttemptHandler)
		attempts.DELETE("/:id", ctrl.DeleteAttemptHandler)

		user := api.Group("/user")
		user.GET("/profiles", ctrl.GetAllProfilesHandler)
		user.GET("/profile/:id", ctrl.GetProfileHandler)
		user.GET("/profile/email/:email", ctrl.GetProfileByEmailHandler)
		user.POST("/profile", ctrl.CreateProfileHandler)
		user.POST("/profile/sync", ctrl.SyncProfileHandler)
		user.PUT("/profile/:id", ctrl.UpdateProfileHandler)
		user.DELETE("/profile/:id", ctrl.DeleteProfileHandler)
		user.GET("/stats/:userId", ctrl.GetUserStatsHandler)

		leaderboard := api.Group("/leaderboard")
		leaderboard.GET("/top", ctrl.GetLeaderboardHandler)
		leaderboard.GET("/streaks", ctrl.GetStreakLeaderboardHandler)
	}
}

// respondServiceError maps service sentinel errors to HTTP status codes.
// Unrecognized errors become 500 with the message echoed, which is
// acceptable for an internal tool.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrAttemptNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountDeactivated),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
