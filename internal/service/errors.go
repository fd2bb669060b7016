package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/golfwager/internal/auth"
	"github.com/mmynk/golfwager/internal/models"
	"github.com/mmynk/golfwager/internal/storage"
)

var (
	ErrNotOwner    = errors.New("round belongs to another scorekeeper")
	ErrRoundLocked = errors.New("round is locked")
)

// connectError maps domain errors onto Connect codes.
func connectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, models.ErrInvalidRound):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ErrNotOwner):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, ErrRoundLocked):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
