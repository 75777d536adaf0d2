package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/libreriasansebastian/usuarios-service/internal/domain"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")

	selectUsers = `SELECT u.id, u.nombre, u.email, u.rut,
	r.id AS rol_id, r.nombre AS rol_nombre, r.descripcion AS rol_descripcion
	FROM usuarios u LEFT JOIN roles r ON r.id = u.rol_id`
)

type userRow struct {
	ID             int64   `db:"id"`
	Nombre         string  `db:"nombre"`
	Email          string  `db:"email"`
	Rut            string  `db:"rut"`
	RolID          *int64  `db:"rol_id"`
	RolNombre      *string `db:"rol_nombre"`
	RolDescripcion *string `db:"rol_descripcion"`
}

func (row userRow) toDomain() domain.User {
	user := domain.User{
		ID:     row.ID,
		Nombre: row.Nombre,
		Email:  row.Email,
		Rut:    row.Rut,
	}
	if row.RolID != nil {
		user.Rol = &domain.Role{ID: *row.RolID, Descripcion: row.RolDescripcion}
		if row.RolNombre != nil {
			user.Rol.Nombre = *row.RolNombre
		}
	}
	return user
}

type userRecord struct {
	ID     int64  `db:"id"`
	Nombre string `db:"nombre"`
	Email  string `db:"email"`
	Rut    string `db:"rut"`
	RolID  *int64 `db:"rol_id"`
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) (data []domain.User, err error) {
	rows := []userRow{}
	err = r.db.SelectContext(ctx, &rows, selectUsers+" ORDER BY u.id")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.FindAll").Msg("")
		return nil, fmt.Errorf("list users: %w", err)
	}

	data = make([]domain.User, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.toDomain())
	}

	return data, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int64) (data domain.User, err error) {
	return r.findOne(ctx, "UserRepository.FindByID", selectUsers+" WHERE u.id = $1", id)
}

func (r *UserRepositoryImpl) FindByName(ctx context.Context, nombre string) (data domain.User, err error) {
	return r.findOne(ctx, "UserRepository.FindByName", selectUsers+" WHERE u.nombre = $1 ORDER BY u.id LIMIT 1", nombre)
}

func (r *UserRepositoryImpl) FindByRut(ctx context.Context, rut string) (data domain.User, err error) {
	return r.findOne(ctx, "UserRepository.FindByRut", selectUsers+" WHERE u.rut = $1", rut)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, component, query string, arg interface{}) (data domain.User, err error) {
	var row userRow
	err = r.db.QueryRowxContext(ctx, query, arg).StructScan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return data, fmt.Errorf("find user: %w", err)
	}

	return row.toDomain(), nil
}

// Save inserts or overwrites the user and reads it back so the referenced role comes back complete.
func (r *UserRepositoryImpl) Save(ctx context.Context, data domain.User) (res domain.User, err error) {
	record := userRecord{
		ID:     data.ID,
		Nombre: data.Nombre,
		Email:  data.Email,
		Rut:    data.Rut,
		RolID:  data.RoleID(),
	}

	if record.ID == 0 {
		err = r.insert(ctx, &record)
	} else {
		err = r.update(ctx, record)
	}
	if err != nil {
		return res, err
	}

	return r.FindByID(ctx, record.ID)
}

func (r *UserRepositoryImpl) insert(ctx context.Context, record *userRecord) error {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO usuarios(nombre, email, rut, rol_id) VALUES (:nombre, :email, :rut, :rol_id) returning id")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.Save").Msg("")
		return fmt.Errorf("prepare user insert: %w", err)
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &record.ID, *record)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.Save").Msg("")
		return translateUserError(err, "insert user")
	}

	return nil
}

func (r *UserRepositoryImpl) update(ctx context.Context, record userRecord) error {
	result, err := r.db.NamedExecContext(ctx, "UPDATE usuarios SET nombre=:nombre, email=:email, rut=:rut, rol_id=:rol_id WHERE id=:id", record)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.Save").Msg("")
		return translateUserError(err, "update user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.Delete").Msg("")
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func translateUserError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == uniqueViolation && pqErr.Constraint == "usuarios_email_key":
			return errs.ErrEmailAlreadyUsed
		case pqErr.Code == uniqueViolation && pqErr.Constraint == "usuarios_rut_key":
			return errs.ErrRutAlreadyUsed
		case pqErr.Code == foreignKeyViolation:
			return errs.ErrRoleReferenceNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
