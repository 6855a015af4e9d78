package token

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medscope/symptom-checker/internal/http/middlewarectx"
	"github.com/medscope/symptom-checker/internal/lib/jwt"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) RefreshAccess(ctx context.Context, claims *jwt.Claims) (string, error) {
	args := m.Called(ctx, claims)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTokenHandler_ServeHTTP(t *testing.T) {
	claims := &jwt.Claims{UserID: "user-uuid", Name: "testuser", Email: "test@example.com"}

	t.Run("issues new access token", func(t *testing.T) {
		authMock := new(AuthServiceMock)
		authMock.On("RefreshAccess", mock.Anything, claims).Return("new-access-token", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.ClaimsKey, claims))
		rec := httptest.NewRecorder()

		New(newNoopLogger(), authMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		data := got["data"].(map[string]any)
		assert.Equal(t, "new-access-token", data["accessToken"])

		authMock.AssertExpectations(t)
	})

	t.Run("missing claims returns 401", func(t *testing.T) {
		authMock := new(AuthServiceMock)

		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		rec := httptest.NewRecorder()

		New(newNoopLogger(), authMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		authMock.AssertNotCalled(t, "RefreshAccess", mock.Anything, mock.Anything)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		authMock := new(AuthServiceMock)
		authMock.On("RefreshAccess", mock.Anything, claims).
			Return("", errors.New("signing failed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.ClaimsKey, claims))
		rec := httptest.NewRecorder()

		New(newNoopLogger(), authMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
