package service

import (
	"context"

	"github.com/libreriasansebastian/usuarios-service/internal/domain"
)

// Lookups report a missing row with found == false and a nil error.
type RoleService interface {
	ListAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id int64) (role domain.Role, found bool, err error)
	FindByName(ctx context.Context, nombre string) (role domain.Role, found bool, err error)
	Save(ctx context.Context, role domain.Role) (domain.Role, error)
	Delete(ctx context.Context, id int64) error
}

type UserService interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (user domain.User, found bool, err error)
	FindByName(ctx context.Context, nombre string) (user domain.User, found bool, err error)
	FindByRut(ctx context.Context, rut string) (user domain.User, found bool, err error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}
