package session

import (
	"context"

	"github.com/dmitrijs2005/videogenius/internal/client/models"
)

// Well-known storage keys.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type Repository interface {
	// Get returns the stored session, or (nil, nil) when none is stored.
	Get(ctx context.Context) (*models.Session, error)
	// Put replaces the stored session as a whole.
	Put(ctx context.Context, s models.Session) error
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
