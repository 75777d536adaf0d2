package service

import (
	"context"
	"errors"

	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/internal/repository"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
)

type RoleServiceImpl struct {
	repo repository.RoleRepository
}

func CreateRoleService(repo repository.RoleRepository) RoleService {
	return &RoleServiceImpl{repo: repo}
}

func (s *RoleServiceImpl) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoleServiceImpl) FindByID(ctx context.Context, id int64) (domain.Role, bool, error) {
	return optional(s.repo.FindByID(ctx, id))
}

func (s *RoleServiceImpl) FindByName(ctx context.Context, nombre string) (domain.Role, bool, error) {
	return optional(s.repo.FindByName(ctx, nombre))
}

func (s *RoleServiceImpl) Save(ctx context.Context, role domain.Role) (domain.Role, error) {
	return s.repo.Save(ctx, role)
}

func (s *RoleServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func optional[T any](data T, err error) (T, bool, error) {
	if errors.Is(err, errs.ErrNotFound) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		return data, false, err
	}
	return data, true, nil
}
