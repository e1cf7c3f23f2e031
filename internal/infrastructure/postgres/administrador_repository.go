package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.AdministradorRepository = (*AdministradorRepo)(nil)

// AdministradorRepo implementación de AdministradorRepository sobre PostgreSQL.
type AdministradorRepo struct {
	q Querier
}

// NewAdministradorRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAdministradorRepository(q Querier) *AdministradorRepo {
	return &AdministradorRepo{q: q}
}

const administradorCols = `id, usuario_id, cargo, created_at, updated_at`

// Create persiste un perfil de administrador.
func (r *AdministradorRepo) Create(ctx context.Context, a *entity.Administrador) error {
	query := `
		INSERT INTO administradores (usuario_id, cargo, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, a.UsuarioID, a.Cargo, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPerfilDuplicado
		}
		return fmt.Errorf("insert administrador: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por id.
func (r *AdministradorRepo) GetByID(ctx context.Context, id int64) (*entity.Administrador, error) {
	return r.scanOne(ctx, `SELECT `+administradorCols+` FROM administradores WHERE id = $1`, id)
}

// GetByUsuarioID obtiene el perfil del usuario dueño, si existe.
func (r *AdministradorRepo) GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Administrador, error) {
	return r.scanOne(ctx, `SELECT `+administradorCols+` FROM administradores WHERE usuario_id = $1`, usuarioID)
}

func (r *AdministradorRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Administrador, error) {
	var a entity.Administrador
	err := r.q.QueryRow(ctx, query, args...).Scan(&a.ID, &a.UsuarioID, &a.Cargo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get administrador: %w", err)
	}
	return &a, nil
}

// List lista perfiles con paginación.
func (r *AdministradorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Administrador, error) {
	query := `SELECT ` + administradorCols + ` FROM administradores ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list administradores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Administrador
	for rows.Next() {
		var a entity.Administrador
		if err := rows.Scan(&a.ID, &a.UsuarioID, &a.Cargo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan administrador: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza el perfil (incluido el re-apuntado de usuario).
func (r *AdministradorRepo) Update(ctx context.Context, a *entity.Administrador) error {
	query := `UPDATE administradores SET usuario_id = $2, cargo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, a.ID, a.UsuarioID, a.Cargo, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPerfilDuplicado
		}
		return fmt.Errorf("update administrador: %w", err)
	}
	return nil
}

// Delete borra físicamente el perfil.
func (r *AdministradorRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM administradores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete administrador: %w", err)
	}
	return nil
}
