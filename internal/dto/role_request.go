package dto

import (
	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
)

type RoleRequest struct {
	ID          int64   `json:"id"`
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

func (r RoleRequest) Validate() error {
	if isBlank(r.Nombre) {
		return errs.ErrRoleNameRequired
	}
	return nil
}

func (r RoleRequest) ToDomain(id int64) domain.Role {
	return domain.Role{
		ID:          id,
		Nombre:      *r.Nombre,
		Descripcion: r.Descripcion,
	}
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
