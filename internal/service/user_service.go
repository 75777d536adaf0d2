package service

import (
	"context"

	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/internal/repository"
)

type UserServiceImpl struct {
	repo repository.UserRepository
}

func CreateUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) (domain.User, bool, error) {
	return optional(s.repo.FindByID(ctx, id))
}

func (s *UserServiceImpl) FindByName(ctx context.Context, nombre string) (domain.User, bool, error) {
	return optional(s.repo.FindByName(ctx, nombre))
}

func (s *UserServiceImpl) FindByRut(ctx context.Context, rut string) (domain.User, bool, error) {
	return optional(s.repo.FindByRut(ctx, rut))
}

func (s *UserServiceImpl) Save(ctx context.Context, user domain.User) (domain.User, error) {
	return s.repo.Save(ctx, user)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
