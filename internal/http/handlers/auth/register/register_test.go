package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	services "github.com/medscope/symptom-checker/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Name:     "user1",
				Email:    "user1@example.com",
				Password: "abc12345",
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "register success, please log in",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name: "missing attribute",
			requestBody: Request{
				Name:  "user1",
				Email: "user1@example.com",
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password is a required field",
		},
		{
			name: "invalid email format",
			requestBody: Request{
				Name:     "user1",
				Email:    "not-an-email",
				Password: "abc12345",
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Email must be a valid email address",
		},
		{
			name: "password without digit",
			requestBody: Request{
				Name:     "user1",
				Email:    "user1@example.com",
				Password: "abcdefgh",
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password must contain at least one digit",
		},
		{
			name: "password too short",
			requestBody: Request{
				Name:     "user1",
				Email:    "user1@example.com",
				Password: "short1",
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password is shorter than the minimum length",
		},
		{
			name: "password too long",
			requestBody: Request{
				Name:     "user1",
				Email:    "user1@example.com",
				Password: "thisisaverylongpassword123",
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password is longer than the maximum length",
		},
		{
			name: "duplicate email",
			requestBody: Request{
				Name:     "user1",
				Email:    "user1@example.com",
				Password: "abc12345",
			},
			mockErr:        services.ErrEmailTaken,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
			wantMessage:    "email already exists",
		},
		{
			name: "service error",
			requestBody: Request{
				Name:     "user1",
				Email:    "user1@example.com",
				Password: "abc12345",
			},
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockCalled {
				authMock.On("Register", mock.Anything, "user1", "user1@example.com", "abc12345").
					Return("user-uuid", tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), authMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, float64(tt.wantStatusCode), got["code"])

			if tt.wantStatusCode == http.StatusOK {
				data := got["data"].(map[string]any)
				assert.Equal(t, tt.wantMessage, data["message"])
			} else {
				errs := got["errors"].(map[string]any)
				assert.Contains(t, errs["message"], tt.wantMessage)
			}

			authMock.AssertExpectations(t)
			if !tt.mockCalled {
				authMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
