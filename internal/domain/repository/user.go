package repository

import (
	"context"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// ProfileRepository describes operations on registered identities.
type ProfileRepository interface {
	Create(ctx context.Context, login, passwordHash, name string) (*model.Profile, error)
	GetByLogin(ctx context.Context, login string) (*model.Profile, error)
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	SetRole(ctx context.Context, id int64, role model.Role) error
}
