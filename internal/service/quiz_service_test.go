package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/lshigami/Brushtail/internal/model"
	"github.com/lshigami/Brushtail/internal/repository"
)

var quizColumns = []string{
	"id", "title", "description", "category", "difficulty", "time_limit",
	"passing_score", "total_questions", "is_published", "created_by",
	"created_at", "updated_at",
}

var questionColumns = []string{
	"id", "quiz_id", "question_text", "question_type", "options",
	"correct_answer", "explanation", "points", "order_number", "created_at",
}

func newQuizService(t *testing.T) (QuizService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db), db)
	return svc, mock
}

func TestQuizService_CreateQuiz(t *testing.T) {
	creator := uuid.New()

	t.Run("DefaultPassingScore", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "quizzes"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		resp, err := svc.CreateQuiz(dto.CreateQuizRequest{
			Title:      "Go Basics",
			Category:   "programming",
			Difficulty: "easy",
			CreatedBy:  creator,
		})
		require.NoError(t, err)
		assert.Equal(t, 70, resp.PassingScore)
		assert.Equal(t, 0, resp.TotalQuestions)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExplicitPassingScore", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "quizzes"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		score := 90
		resp, err := svc.CreateQuiz(dto.CreateQuizRequest{
			Title:        "Advanced Go",
			Category:     "programming",
			Difficulty:   "hard",
			PassingScore: &score,
			CreatedBy:    creator,
		})
		require.NoError(t, err)
		assert.Equal(t, 90, resp.PassingScore)
	})
}

func TestQuizService_GetQuizzesByCreator(t *testing.T) {
	svc, mock := newQuizService(t)
	creator := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE created_by = \$1`).
		WithArgs(creator).
		WillReturnRows(sqlmock.NewRows(quizColumns).
			AddRow(uuid.New(), "Go Basics", "", "programming", "easy", nil, 70, 4, true, creator, now, now).
			AddRow(uuid.New(), "Go Concurrency", "", "programming", "hard", nil, 80, 6, false, creator, now, now))

	quizzes, err := svc.GetQuizzesByCreator(creator)
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, creator, quizzes[0].CreatedBy)
	assert.Equal(t, "Go Concurrency", quizzes[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizService_AddQuestion(t *testing.T) {
	quizID := uuid.New()
	now := time.Now()

	t.Run("IncrementsQuestionCount", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(quizColumns).
				AddRow(quizID, "Go Basics", "", "programming", "easy", nil, 70, 2, true, uuid.New(), now, now))
		mock.ExpectExec(`INSERT INTO "questions"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE "quizzes" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, err := svc.AddQuestion(quizID, dto.CreateQuestionRequest{
			QuestionText:  "What does := do?",
			QuestionType:  "multiple_choice",
			Options:       []string{"declares", "assigns", "both"},
			CorrectAnswer: "both",
			OrderNumber:   3,
		})
		require.NoError(t, err)
		assert.Equal(t, quizID, resp.QuizID)
		assert.Equal(t, 10, resp.Points, "unspecified points fall back to the default")
		assert.Equal(t, []string{"declares", "assigns", "both"}, resp.Options)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExplicitPoints", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(quizColumns).
				AddRow(quizID, "Go Basics", "", "programming", "easy", nil, 70, 0, true, uuid.New(), now, now))
		mock.ExpectExec(`INSERT INTO "questions"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE "quizzes" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		points := 25
		resp, err := svc.AddQuestion(quizID, dto.CreateQuestionRequest{
			QuestionText:  "Explain goroutines",
			QuestionType:  "fill_blank",
			CorrectAnswer: "lightweight threads",
			Points:        &points,
		})
		require.NoError(t, err)
		assert.Equal(t, 25, resp.Points)
	})

	t.Run("UnknownQuizRollsBack", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(quizColumns))
		mock.ExpectRollback()

		_, err := svc.AddQuestion(uuid.New(), dto.CreateQuestionRequest{
			QuestionText:  "orphan",
			QuestionType:  "true_false",
			CorrectAnswer: "true",
		})
		assert.ErrorIs(t, err, ErrQuizNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuizService_DeleteQuestion(t *testing.T) {
	quizID := uuid.New()
	questionID := uuid.New()
	now := time.Now()

	t.Run("DecrementsQuestionCount", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(questionColumns).
				AddRow(questionID, quizID, "q", "true_false", `[]`, "true", "", 10, 1, now))
		mock.ExpectExec(`DELETE FROM "questions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(quizColumns).
				AddRow(quizID, "Go Basics", "", "programming", "easy", nil, 70, 3, true, uuid.New(), now, now))
		mock.ExpectExec(`UPDATE "quizzes" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, svc.DeleteQuestion(questionID))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountFlooredAtZero", func(t *testing.T) {
		quiz := model.Quiz{TotalQuestions: 0}
		decrementQuestionCount(&quiz)
		assert.Equal(t, 0, quiz.TotalQuestions, "a drifted count must never go negative")

		quiz.TotalQuestions = 3
		decrementQuestionCount(&quiz)
		assert.Equal(t, 2, quiz.TotalQuestions)
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(questionColumns))
		mock.ExpectRollback()

		err := svc.DeleteQuestion(uuid.New())
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestQuizService_DeleteQuiz_CascadesQuestions(t *testing.T) {
	svc, mock := newQuizService(t)
	quizID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "questions" WHERE quiz_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "quizzes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.DeleteQuiz(quizID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizService_UpdateQuiz(t *testing.T) {
	quizID := uuid.New()
	now := time.Now()

	t.Run("PatchesOnlyProvidedFields", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(quizColumns).
				AddRow(quizID, "Old Title", "desc", "programming", "easy", nil, 70, 5, false, uuid.New(), now, now))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "quizzes" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		published := true
		resp, err := svc.UpdateQuiz(quizID, dto.UpdateQuizRequest{IsPublished: &published})
		require.NoError(t, err)
		assert.Equal(t, "Old Title", resp.Title)
		assert.True(t, resp.IsPublished)
		assert.Equal(t, 5, resp.TotalQuestions)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		svc, mock := newQuizService(t)

		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(quizColumns))

		_, err := svc.UpdateQuiz(uuid.New(), dto.UpdateQuizRequest{})
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})
}
