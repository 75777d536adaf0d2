package repository

import (
	"context"

	"github.com/libreriasansebastian/usuarios-service/internal/domain"
)

// Lookups return errs.ErrNotFound when no row matches.
type RoleRepository interface {
	FindAll(ctx context.Context) (data []domain.Role, err error)
	FindByID(ctx context.Context, id int64) (data domain.Role, err error)
	FindByName(ctx context.Context, nombre string) (data domain.Role, err error)
	Save(ctx context.Context, data domain.Role) (res domain.Role, err error)
	Delete(ctx context.Context, id int64) (err error)
}

type UserRepository interface {
	FindAll(ctx context.Context) (data []domain.User, err error)
	FindByID(ctx context.Context, id int64) (data domain.User, err error)
	FindByName(ctx context.Context, nombre string) (data domain.User, err error)
	FindByRut(ctx context.Context, rut string) (data domain.User, err error)
	Save(ctx context.Context, data domain.User) (res domain.User, err error)
	Delete(ctx context.Context, id int64) (err error)
}
