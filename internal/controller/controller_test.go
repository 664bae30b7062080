package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/lshigami/Brushtail/internal/model"
	"github.com/lshigami/Brushtail/internal/service"
)

// Fakes embed the service interfaces so each test only overrides the
// methods its route touches.

type fakeAuthService struct {
	service.AuthService
	validateFn func(token string) (*model.User, error)
	registerFn func(req dto.RegisterRequest) (*dto.AuthResponse, error)
}

func (f *fakeAuthService) ValidateToken(token string) (*model.User, error) {
	return f.validateFn(token)
}

func (f *fakeAuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	return f.registerFn(req)
}

type fakeProfileService struct {
	service.ProfileService
	leaderboardFn func(limit int) ([]dto.ProfileResponse, error)
}

func (f *fakeProfileService) GetLeaderboard(limit int) ([]dto.ProfileResponse, error) {
	return f.leaderboardFn(limit)
}

func (f *fakeProfileService) GetStreakLeaderboard(limit int) ([]dto.ProfileResponse, error) {
	return f.leaderboardFn(limit)
}

type fakeQuizService struct {
	service.QuizService
	byCreatorFn func(createdBy uuid.UUID) ([]dto.QuizResponse, error)
}

func (f *fakeQuizService) GetQuizzesByCreator(createdBy uuid.UUID) ([]dto.QuizResponse, error) {
	return f.byCreatorFn(createdBy)
}

func newTestRouter(ctrl *Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl.RegisterRoutes(r)
	return r
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(NewController(nil, nil, nil, nil))

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UP", body["status"])
	})

	t.Run("Root", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Quiz Learning Platform API")
	})
}

func TestValidateTokenHandler(t *testing.T) {
	t.Run("BearerPrefixStripped", func(t *testing.T) {
		var seen string
		auth := &fakeAuthService{validateFn: func(token string) (*model.User, error) {
			seen = token
			return &model.User{Email: "user@example.com"}, nil
		}}
		router := newTestRouter(NewController(auth, nil, nil, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer sometoken")
		router.ServeHTTP(w, req)

		assert.Equal(t, "sometoken", seen)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.ValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "user@example.com", resp.Email)
	})

	t.Run("InvalidTokenGivesUniformBody", func(t *testing.T) {
		auth := &fakeAuthService{validateFn: func(token string) (*model.User, error) {
			return nil, service.ErrInvalidToken
		}}
		router := newTestRouter(NewController(auth, nil, nil, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"valid":false}`, w.Body.String())
	})
}

func TestRegisterHandler_ErrorMapping(t *testing.T) {
	t.Run("DuplicateEmail", func(t *testing.T) {
		auth := &fakeAuthService{registerFn: func(req dto.RegisterRequest) (*dto.AuthResponse, error) {
			return nil, service.ErrEmailTaken
		}}
		router := newTestRouter(NewController(auth, nil, nil, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"email":"dup@example.com","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		router := newTestRouter(NewController(&fakeAuthService{}, nil, nil, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"email":"not-an-email","password":""}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaderboardHandler_LimitParsing(t *testing.T) {
	var gotLimit int
	profiles := &fakeProfileService{leaderboardFn: func(limit int) ([]dto.ProfileResponse, error) {
		gotLimit = limit
		return []dto.ProfileResponse{{}, {}}, nil
	}}
	router := newTestRouter(NewController(nil, nil, nil, profiles))

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"Default", "", 10},
		{"Explicit", "?limit=3", 3},
		{"Garbage", "?limit=abc", 10},
		{"Zero", "?limit=0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/top"+tc.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, gotLimit)

			var resp dto.LeaderboardResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, 2, resp.Total)
		})
	}

	t.Run("StreaksRoute", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/streaks?limit=5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, gotLimit)
	})
}

func TestGetQuizzesByCreatorHandler(t *testing.T) {
	creator := uuid.New()

	t.Run("Success", func(t *testing.T) {
		var gotCreator uuid.UUID
		quizzes := &fakeQuizService{byCreatorFn: func(createdBy uuid.UUID) ([]dto.QuizResponse, error) {
			gotCreator = createdBy
			return []dto.QuizResponse{{Title: "Go Basics", CreatedBy: createdBy}}, nil
		}}
		router := newTestRouter(NewController(nil, quizzes, nil, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/quiz/creator/"+creator.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, creator, gotCreator)

		var resp []dto.QuizResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Go Basics", resp[0].Title)
	})

	t.Run("InvalidCreatorID", func(t *testing.T) {
		router := newTestRouter(NewController(nil, &fakeQuizService{}, nil, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/quiz/creator/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUUIDParamValidation(t *testing.T) {
	router := newTestRouter(NewController(nil, nil, nil, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid")
}
