package logout

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
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLogoutHandler_ServeHTTP(t *testing.T) {
	t.Run("deletes token and confirms", func(t *testing.T) {
		authMock := new(AuthServiceMock)
		authMock.On("Logout", mock.Anything, "refresh-token").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.RefreshTokenKey, "refresh-token"))
		rec := httptest.NewRecorder()

		New(newNoopLogger(), authMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		data := got["data"].(map[string]any)
		assert.Equal(t, "sign out success", data["message"])

		authMock.AssertExpectations(t)
	})

	t.Run("missing token in context returns 401", func(t *testing.T) {
		authMock := new(AuthServiceMock)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()

		New(newNoopLogger(), authMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		authMock.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		authMock := new(AuthServiceMock)
		authMock.On("Logout", mock.Anything, "refresh-token").
			Return(errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.RefreshTokenKey, "refresh-token"))
		rec := httptest.NewRecorder()

		New(newNoopLogger(), authMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
