package auth

import (
	"context"

	"github.com/mmynk/golfwager/internal/models"
)

// Authenticator registers and signs in scorekeepers.
type Authenticator interface {
	// Register creates a new scorekeeper account with the given credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential meets minimum requirements.
	ValidateCredential(credential string) error
}
