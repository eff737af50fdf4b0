package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "courselens.test",
	})
}

func protectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userID": id, "role": string(CurrentUserRole(c))})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService)
	router := protectedRouter(m)

	t.Run("valid token passes identity through", func(t *testing.T) {
		accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
			ID: 7, Email: "somchai@student.ac.th", RoleType: models.RoleStudent,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 7, body["userID"])
		assert.Equal(t, string(models.RoleStudent), body["role"])
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "not-a-bearer")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "other-secret",
			AccessTokenExp:  time.Hour,
			RefreshTokenExp: 24 * time.Hour,
			TokenIssuer:     "courselens.test",
		})
		accessToken, _, _, _, err := other.GenerateTokenPair(&models.User{ID: 7})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService)
	router := protectedRouter(m, m.RoleRequired(models.RoleAdmin))

	request := func(role models.RoleType) *httptest.ResponseRecorder {
		accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, RoleType: role})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, request(models.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden, request(models.RoleStudent).Code)
	assert.Equal(t, http.StatusForbidden, request(models.RoleInstructor).Code)
}

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		var body dto.ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		return w, body
	}

	tests := []struct {
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrReviewNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrNotReviewAuthor, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrSelfReportForbidden, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrInvalidRatingSpan, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{apperrors.ErrDuplicateReview, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrAlreadyWishlisted, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrReportAlreadyClosed, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{fmt.Errorf("some database explosion"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w, body := serve(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}

	t.Run("wrapped sentinels still map", func(t *testing.T) {
		w, body := serve(fmt.Errorf("outer context: %w", apperrors.ErrCourseNotFound))
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	})

	t.Run("internal errors hide details", func(t *testing.T) {
		_, body := serve(fmt.Errorf("pq: connection refused"))
		require.NotNil(t, body.Error)
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}
