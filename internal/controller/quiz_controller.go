package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetAllQuizzesHandler godoc
// @Summary Get all quizzes
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Router /quiz/all [get]
func (ctrl *Controller) GetAllQuizzesHandler(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all quizzes")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetPublishedQuizzesHandler godoc
// @Summary Get published quizzes
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Router /quiz/published [get]
func (ctrl *Controller) GetPublishedQuizzesHandler(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.GetPublishedQuizzes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuizHandler godoc
// @Summary Get a quiz by ID
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/{id} [get]
func (ctrl *Controller) GetQuizHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	quiz, err := ctrl.quizSvc.GetQuizByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuizzesByCategoryHandler godoc
// @Summary Get quizzes by category
// @Tags quiz
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} dto.QuizResponse
// @Router /quiz/category/{category} [get]
func (ctrl *Controller) GetQuizzesByCategoryHandler(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.GetQuizzesByCategory(c.Param("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuizzesByDifficultyHandler godoc
// @Summary Get quizzes by difficulty
// @Tags quiz
// @Produce json
// @Param difficulty path string true "Difficulty"
// @Success 200 {array} dto.QuizResponse
// @Router /quiz/difficulty/{difficulty} [get]
func (ctrl *Controller) GetQuizzesByDifficultyHandler(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.GetQuizzesByDifficulty(c.Param("difficulty"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuizzesByCreatorHandler godoc
// @Summary Get quizzes by creator
// @Tags quiz
// @Produce json
// @Param createdBy path string true "Creator user ID"
// @Success 200 {array} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz/creator/{createdBy} [get]
func (ctrl *Controller) GetQuizzesByCreatorHandler(c *gin.Context) {
	createdBy, ok := parseUUIDParam(c, "createdBy")
	if !ok {
		return
	}
	quizzes, err := ctrl.quizSvc.GetQuizzesByCreator(createdBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// CreateQuizHandler godoc
// @Summary Create a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz data"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz/create [post]
func (ctrl *Controller) CreateQuizHandler(c *gin.Context) {
	var req dto.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	quiz, err := ctrl.quizSvc.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create quiz")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuizHandler godoc
// @Summary Update a quiz
// @Description Patches only the supplied fields
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz body dto.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/{id} [put]
func (ctrl *Controller) UpdateQuizHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	quiz, err := ctrl.quizSvc.UpdateQuiz(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuizHandler godoc
// @Summary Delete a quiz and its questions
// @Tags quiz
// @Param id path string true "Quiz ID"
// @Success 204 "No Content"
// @Router /quiz/{id} [delete]
func (ctrl *Controller) DeleteQuizHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.quizSvc.DeleteQuiz(id); err != nil {
		log.Error().Err(err).Str("quizId", id.String()).Msg("Failed to delete quiz")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetQuizQuestionsHandler godoc
// @Summary Get the questions of a quiz in display order
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {array} dto.QuestionResponse
// @Router /quiz/{id}/questions [get]
func (ctrl *Controller) GetQuizQuestionsHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	questions, err := ctrl.quizSvc.GetQuizQuestions(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// AddQuestionHandler godoc
// @Summary Add a question to a quiz
// @Description Creates the question and increments the quiz's question count
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/{id}/questions [post]
func (ctrl *Controller) AddQuestionHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	question, err := ctrl.quizSvc.AddQuestion(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Removes the question and decrements the quiz's question count
// @Tags quiz
// @Param questionId path string true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/questions/{questionId} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "questionId")
	if !ok {
		return
	}
	if err := ctrl.quizSvc.DeleteQuestion(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
