package client

import (
	"context"

	"github.com/dmitrijs2005/loginkeeper/internal/client/models"
)

// Client is the backend user-info API as seen by the session holder.
type Client interface {
	Close() error
	GetLoginUser(ctx context.Context) (*models.Envelope[models.LoginUser], error)
	Ping(ctx context.Context) error
}
