package repository

import (
	"context"
	"testing"

	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRoleMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := CreateRoleMemoryRepository(NewMemoryStore())

	admin, err := repo.Save(ctx, domain.Role{Nombre: "ADMIN", Descripcion: strPtr("Administrador")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), admin.ID)

	cliente, err := repo.Save(ctx, domain.Role{Nombre: "CLIENTE"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cliente.ID)

	roles, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "ADMIN", roles[0].Nombre)
	assert.Equal(t, "CLIENTE", roles[1].Nombre)

	found, err := repo.FindByName(ctx, "CLIENTE")
	require.NoError(t, err)
	assert.Equal(t, cliente, found)

	_, err = repo.FindByName(ctx, "cliente")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	admin.Nombre = "SUPERADMIN"
	admin.Descripcion = nil
	updated, err := repo.Save(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)

	found, err = repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "SUPERADMIN", found.Nombre)
	assert.Nil(t, found.Descripcion)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	roles, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestRoleMemoryRepository_SaveUnknownIDIsNotFound(t *testing.T) {
	repo := CreateRoleMemoryRepository(NewMemoryStore())

	_, err := repo.Save(context.Background(), domain.Role{ID: 42, Nombre: "ADMIN"})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	roles, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestRoleMemoryRepository_DeleteReferencedRole(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	roles := CreateRoleMemoryRepository(store)
	users := CreateUserMemoryRepository(store)

	admin, err := roles.Save(ctx, domain.Role{Nombre: "ADMIN"})
	require.NoError(t, err)
	_, err = users.Save(ctx, domain.User{Nombre: "Juan", Email: "juan@email.com", Rut: "1-9", Rol: &domain.Role{ID: admin.ID}})
	require.NoError(t, err)

	assert.ErrorIs(t, roles.Delete(ctx, admin.ID), errs.ErrRoleInUse)

	_, err = roles.FindByID(ctx, admin.ID)
	assert.NoError(t, err)
}

func TestUserMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	roles := CreateRoleMemoryRepository(store)
	repo := CreateUserMemoryRepository(store)

	admin, err := roles.Save(ctx, domain.Role{Nombre: "ADMIN"})
	require.NoError(t, err)

	juan, err := repo.Save(ctx, domain.User{Nombre: "Juan Pérez", Email: "juan@email.com", Rut: "12345678-9", Rol: &domain.Role{ID: admin.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), juan.ID)
	require.NotNil(t, juan.Rol)
	assert.Equal(t, "ADMIN", juan.Rol.Nombre)

	maria, err := repo.Save(ctx, domain.User{Nombre: "María González", Email: "maria@email.com", Rut: "98765432-1"})
	require.NoError(t, err)
	assert.Nil(t, maria.Rol)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, juan.ID, all[0].ID)
	assert.Equal(t, maria.ID, all[1].ID)

	byRut, err := repo.FindByRut(ctx, "98765432-1")
	require.NoError(t, err)
	assert.Equal(t, maria, byRut)

	byName, err := repo.FindByName(ctx, "Juan Pérez")
	require.NoError(t, err)
	assert.Equal(t, juan, byName)

	_, err = repo.FindByRut(ctx, "99999999-9")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	juan.Rol = nil
	juan.Email = "juan.perez@email.com"
	updated, err := repo.Save(ctx, juan)
	require.NoError(t, err)
	assert.Nil(t, updated.Rol)
	assert.Equal(t, "juan.perez@email.com", updated.Email)

	require.NoError(t, repo.Delete(ctx, maria.ID))
	_, err = repo.FindByID(ctx, maria.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserMemoryRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	repo := CreateUserMemoryRepository(NewMemoryStore())

	_, err := repo.Save(ctx, domain.User{Nombre: "Juan", Email: "juan@email.com", Rut: "1-9"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, domain.User{Nombre: "Otro", Email: "juan@email.com", Rut: "2-7"})
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)

	_, err = repo.Save(ctx, domain.User{Nombre: "Otro", Email: "otro@email.com", Rut: "1-9"})
	assert.ErrorIs(t, err, errs.ErrRutAlreadyUsed)

	_, err = repo.Save(ctx, domain.User{Nombre: "Otro", Email: "otro@email.com", Rut: "2-7", Rol: &domain.Role{ID: 7}})
	assert.ErrorIs(t, err, errs.ErrRoleReferenceNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserMemoryRepository_ReadsCurrentRole(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	roles := CreateRoleMemoryRepository(store)
	users := CreateUserMemoryRepository(store)

	role, err := roles.Save(ctx, domain.Role{Nombre: "VENDEDOR"})
	require.NoError(t, err)
	user, err := users.Save(ctx, domain.User{Nombre: "Ana", Email: "ana@email.com", Rut: "3-5", Rol: &domain.Role{ID: role.ID}})
	require.NoError(t, err)

	role.Nombre = "CAJERO"
	_, err = roles.Save(ctx, role)
	require.NoError(t, err)

	found, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Rol)
	assert.Equal(t, "CAJERO", found.Rol.Nombre)
}
