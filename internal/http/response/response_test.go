package response

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	resp := OK(map[string]any{"message": "done"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, map[string]any{"message": "done"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error(http.StatusUnauthorized, "incorrect email or password")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Unauthorized", resp.Status)
	assert.Equal(t, "incorrect email or password", resp.Errors.Message)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Name     string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8,max=16,containsany=0123456789"`
	}

	v := validator.New()

	tests := []struct {
		name string
		req  request
		want []string
	}{
		{
			name: "missing fields",
			req:  request{},
			want: []string{
				"field Name is a required field",
				"field Email is a required field",
				"field Password is a required field",
			},
		},
		{
			name: "bad email format",
			req:  request{Name: "user", Email: "not-an-email", Password: "abc12345"},
			want: []string{"field Email must be a valid email address"},
		},
		{
			name: "password too short",
			req:  request{Name: "user", Email: "u@example.com", Password: "short1"},
			want: []string{"field Password is shorter than the minimum length"},
		},
		{
			name: "password too long",
			req:  request{Name: "user", Email: "u@example.com", Password: "thisisaverylongpassword123"},
			want: []string{"field Password is longer than the maximum length"},
		},
		{
			name: "password without digits",
			req:  request{Name: "user", Email: "u@example.com", Password: "abcdefgh"},
			want: []string{"field Password must contain at least one digit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			for _, msg := range tt.want {
				assert.Contains(t, resp.Errors.Message, msg)
			}
		})
	}
}

// "abc12345" удовлетворяет политике пароля целиком.
func TestPasswordPolicyAccepts(t *testing.T) {
	type request struct {
		Password string `validate:"required,min=8,max=16,containsany=0123456789"`
	}

	v := validator.New()
	assert.NoError(t, v.Struct(request{Password: "abc12345"}))
}
