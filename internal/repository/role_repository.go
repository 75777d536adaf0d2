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

type RoleRepositoryImpl struct {
	db *sqlx.DB
}

func CreateRoleRepository(db *sqlx.DB) RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

func (r *RoleRepositoryImpl) FindAll(ctx context.Context) (data []domain.Role, err error) {
	data = []domain.Role{}
	err = r.db.SelectContext(ctx, &data, "SELECT id, nombre, descripcion FROM roles ORDER BY id")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RoleRepository.FindAll").Msg("")
		return nil, fmt.Errorf("list roles: %w", err)
	}

	return data, nil
}

func (r *RoleRepositoryImpl) FindByID(ctx context.Context, id int64) (data domain.Role, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, nombre, descripcion FROM roles WHERE id = $1", id)
	return r.scan(ctx, row, "RoleRepository.FindByID")
}

func (r *RoleRepositoryImpl) FindByName(ctx context.Context, nombre string) (data domain.Role, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, nombre, descripcion FROM roles WHERE nombre = $1 ORDER BY id LIMIT 1", nombre)
	return r.scan(ctx, row, "RoleRepository.FindByName")
}

func (r *RoleRepositoryImpl) scan(ctx context.Context, row *sqlx.Row, component string) (data domain.Role, err error) {
	err = row.StructScan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return data, fmt.Errorf("find role: %w", err)
	}

	return
}

func (r *RoleRepositoryImpl) Save(ctx context.Context, data domain.Role) (res domain.Role, err error) {
	if data.ID == 0 {
		nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO roles(nombre, descripcion) VALUES (:nombre, :descripcion) returning id")
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "RoleRepository.Save").Msg("")
			return res, fmt.Errorf("prepare role insert: %w", err)
		}
		defer nstmt.Close()

		err = nstmt.GetContext(ctx, &data.ID, data)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "RoleRepository.Save").Msg("")
			return res, fmt.Errorf("insert role: %w", err)
		}

		return data, nil
	}

	result, err := r.db.NamedExecContext(ctx, "UPDATE roles SET nombre=:nombre, descripcion=:descripcion WHERE id=:id", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RoleRepository.Save").Msg("")
		return res, fmt.Errorf("update role: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return res, fmt.Errorf("update role: %w", err)
	}
	if affected == 0 {
		return res, errs.ErrNotFound
	}

	return data, nil
}

func (r *RoleRepositoryImpl) Delete(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM roles WHERE id = $1", id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RoleRepository.Delete").Msg("")
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return errs.ErrRoleInUse
		}
		return fmt.Errorf("delete role: %w", err)
	}

	return nil
}
