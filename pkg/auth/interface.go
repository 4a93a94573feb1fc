package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks teamhub/pkg/auth TokenManager

// TokenManager defines the interface for access token operations.
type TokenManager interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID string) (string, error)
	// ValidateToken parses and validates a token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
