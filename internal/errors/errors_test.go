package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrForbidden", ErrForbidden, "this action is unauthorized"},
		{"ErrInvalidToken", ErrInvalidToken, "invalid token"},
		{"ErrTokenExpired", ErrTokenExpired, "token expired"},
		{"ErrInvalidResetToken", ErrInvalidResetToken, "this password reset token is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTeamErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTeamNotFound", ErrTeamNotFound, "team not found"},
		{"ErrNotTeamMember", ErrNotTeamMember, "you are not a member of this team"},
		{"ErrRoleNotFound", ErrRoleNotFound, "role not found in this team"},
		{"ErrInvitationNotFound", ErrInvitationNotFound, "invitation not found"},
		{"ErrInvitationEmailMismatch", ErrInvitationEmailMismatch, "invitation was sent to a different email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgument("role", "Invalid role selected.")

	assert.Equal(t, "Invalid role selected.", err.Error())
	assert.Equal(t, "role", err.Field)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrRoleNotFound))

	wrapped := fmt.Errorf("store invitation: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))

	var target *InvalidArgumentError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "Invalid role selected.", target.Message)
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrUserNotFound, ErrUserAlreadyExists, ErrInvalidCredentials,
		ErrUnauthorized, ErrForbidden, ErrInvalidToken, ErrTokenExpired,
		ErrTeamNotFound, ErrNotTeamMember, ErrRoleNotFound,
		ErrInvitationNotFound, ErrInvitationEmailMismatch, ErrAlreadyMember, ErrPendingInvitation,
		ErrInvalidArgument,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
