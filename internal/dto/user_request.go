package dto

import (
	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
)

type UserRequest struct {
	ID     int64        `json:"id"`
	Nombre *string      `json:"nombre"`
	Email  *string      `json:"email"`
	Rut    *string      `json:"rut"`
	Rol    *RoleRequest `json:"rol"`
}

func (r UserRequest) Validate() error {
	switch {
	case isBlank(r.Nombre):
		return errs.ErrUserNameRequired
	case isBlank(r.Email):
		return errs.ErrUserEmailRequired
	case isBlank(r.Rut):
		return errs.ErrUserRutRequired
	}
	return nil
}

// ToDomain only carries the role id; the role row itself is never written through a user.
func (r UserRequest) ToDomain(id int64) domain.User {
	user := domain.User{
		ID:     id,
		Nombre: *r.Nombre,
		Email:  *r.Email,
		Rut:    *r.Rut,
	}
	if r.Rol != nil && r.Rol.ID != 0 {
		user.Rol = &domain.Role{ID: r.Rol.ID}
	}
	return user
}
