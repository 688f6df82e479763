package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name,omitempty" validate:"max=5"`
}

func TestValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signUp{Email: "jane@example.com", Password: "Password1"}))

	err := v.Validate(&signUp{Email: "nope", Name: "too long"})
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address; password is required; name must be at most 5 characters", Describe(err))
}
