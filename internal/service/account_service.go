package service

import (
	"context"
	"errors"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
)

// ErrNotAvailable is returned by capabilities that have no backend yet.
var ErrNotAvailable = errors.New("not yet available")

type AccountStore interface {
	CreateAccount(ctx context.Context, email, password, plan string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
}

// UnavailableAccountStore stands in until member accounts have a backend.
type UnavailableAccountStore struct{}

func (UnavailableAccountStore) CreateAccount(ctx context.Context, email, password, plan string) (*models.User, error) {
	return nil, ErrNotAvailable
}

func (UnavailableAccountStore) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	return nil, ErrNotAvailable
}

// GetProfile reports no profile rather than an error, matching an
// anonymous visitor.
func (UnavailableAccountStore) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	return nil, nil
}
