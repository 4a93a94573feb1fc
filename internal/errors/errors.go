// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("this action is unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidResetToken  = errors.New("this password reset token is invalid")
	ErrInvalidOAuthState  = errors.New("invalid oauth state")
	ErrOAuthNotConfigured = errors.New("google login is not configured")
	ErrOAuthEmailMissing  = errors.New("google account has no email address")
)

// Team errors
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrNotTeamMember     = errors.New("you are not a member of this team")
	ErrRoleNotFound      = errors.New("role not found in this team")
	ErrPermissionMissing = errors.New("permission not found")
)

// Invitation errors
var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationEmailMismatch = errors.New("invitation was sent to a different email")
	ErrAlreadyMember           = errors.New("user is already a team member")
	ErrPendingInvitation       = errors.New("invitation already pending for this email")
)

// Storage errors
var (
	ErrStorageUnavailable = errors.New("object storage is not configured")
	ErrUnsupportedAvatar  = errors.New("avatar must be a jpeg, png, gif or webp image")
)

// ErrInvalidArgument is the sentinel matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError carries a user-facing validation message.
type InvalidArgumentError struct {
	Field   string
	Message string
}

// NewInvalidArgument returns an InvalidArgumentError for field.
func NewInvalidArgument(field, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Message: message}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrInvalidArgument) match any InvalidArgumentError.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
