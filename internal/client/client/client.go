package client

import (
	"context"

	"github.com/dmitrijs2005/videogenius/internal/client/models"
)

// Client is the transport contract of the VideoGenius API.
type Client interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	VerifyToken(ctx context.Context, token string) (*models.User, error)
	GenerateVideo(ctx context.Context, token string, req models.GenerationRequest) (*models.GenerationResult, error)
	Points(ctx context.Context, token string) (int64, error)
	Close() error
}
