package repository

import (
	"context"
	"sync"

	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
)

// MemoryStore holds both tables so user reads can resolve roles and role deletes can
// see their references, the way the relational schema does.
type MemoryStore struct {
	mu         sync.RWMutex
	roles      map[int64]domain.Role
	roleOrder  []int64
	lastRoleID int64
	users      map[int64]domain.User
	userOrder  []int64
	lastUserID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roles: make(map[int64]domain.Role),
		users: make(map[int64]domain.User),
	}
}

type roleMemoryRepository struct {
	store *MemoryStore
}

func CreateRoleMemoryRepository(store *MemoryStore) RoleRepository {
	return &roleMemoryRepository{store: store}
}

func (r *roleMemoryRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	data := make([]domain.Role, 0, len(r.store.roleOrder))
	for _, id := range r.store.roleOrder {
		data = append(data, r.store.roles[id])
	}
	return data, nil
}

func (r *roleMemoryRepository) FindByID(ctx context.Context, id int64) (domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	role, ok := r.store.roles[id]
	if !ok {
		return domain.Role{}, errs.ErrNotFound
	}
	return role, nil
}

func (r *roleMemoryRepository) FindByName(ctx context.Context, nombre string) (domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range r.store.roleOrder {
		if role := r.store.roles[id]; role.Nombre == nombre {
			return role, nil
		}
	}
	return domain.Role{}, errs.ErrNotFound
}

func (r *roleMemoryRepository) Save(ctx context.Context, data domain.Role) (domain.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if data.ID == 0 {
		r.store.lastRoleID++
		data.ID = r.store.lastRoleID
		r.store.roleOrder = append(r.store.roleOrder, data.ID)
	} else if _, ok := r.store.roles[data.ID]; !ok {
		return domain.Role{}, errs.ErrNotFound
	}

	r.store.roles[data.ID] = data
	return data, nil
}

func (r *roleMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Rol != nil && user.Rol.ID == id {
			return errs.ErrRoleInUse
		}
	}

	if _, ok := r.store.roles[id]; ok {
		delete(r.store.roles, id)
		r.store.roleOrder = removeID(r.store.roleOrder, id)
	}
	return nil
}

type userMemoryRepository struct {
	store *MemoryStore
}

func CreateUserMemoryRepository(store *MemoryStore) UserRepository {
	return &userMemoryRepository{store: store}
}

func (r *userMemoryRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	data := make([]domain.User, 0, len(r.store.userOrder))
	for _, id := range r.store.userOrder {
		data = append(data, r.resolve(r.store.users[id]))
	}
	return data, nil
}

func (r *userMemoryRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return r.resolve(user), nil
}

func (r *userMemoryRepository) FindByName(ctx context.Context, nombre string) (domain.User, error) {
	return r.findFirst(func(u domain.User) bool { return u.Nombre == nombre })
}

func (r *userMemoryRepository) FindByRut(ctx context.Context, rut string) (domain.User, error) {
	return r.findFirst(func(u domain.User) bool { return u.Rut == rut })
}

func (r *userMemoryRepository) findFirst(match func(domain.User) bool) (domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range r.store.userOrder {
		if user := r.store.users[id]; match(user) {
			return r.resolve(user), nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *userMemoryRepository) Save(ctx context.Context, data domain.User) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if data.ID != 0 {
		if _, ok := r.store.users[data.ID]; !ok {
			return domain.User{}, errs.ErrNotFound
		}
	}

	for id, other := range r.store.users {
		if id == data.ID {
			continue
		}
		if other.Email == data.Email {
			return domain.User{}, errs.ErrEmailAlreadyUsed
		}
		if other.Rut == data.Rut {
			return domain.User{}, errs.ErrRutAlreadyUsed
		}
	}

	if roleID := data.RoleID(); roleID != nil {
		if _, ok := r.store.roles[*roleID]; !ok {
			return domain.User{}, errs.ErrRoleReferenceNotFound
		}
		data.Rol = &domain.Role{ID: *roleID}
	} else {
		data.Rol = nil
	}

	if data.ID == 0 {
		r.store.lastUserID++
		data.ID = r.store.lastUserID
		r.store.userOrder = append(r.store.userOrder, data.ID)
	}

	r.store.users[data.ID] = data
	return r.resolve(data), nil
}

func (r *userMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; ok {
		delete(r.store.users, id)
		r.store.userOrder = removeID(r.store.userOrder, id)
	}
	return nil
}

// resolve replaces the stored role reference with the current role row. Callers hold the lock.
func (r *userMemoryRepository) resolve(user domain.User) domain.User {
	if user.Rol == nil {
		return user
	}
	if role, ok := r.store.roles[user.Rol.ID]; ok {
		user.Rol = &role
	}
	return user
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
