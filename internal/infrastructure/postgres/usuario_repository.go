package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Acepta pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nombre, email, documento, password_hash, activo, token_activacion, created_at, updated_at`

// Create persiste un nuevo usuario. El id lo asigna la base de datos.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, email, documento, password_hash, activo, token_activacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.Nombre, u.Email, u.Documento, u.PasswordHash, u.Activo, u.TokenActivacion,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(constraintName(err), "documento") {
				return domain.ErrDocumentoDuplicado
			}
			return domain.ErrEmailDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return r.scanOne(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE email = $1 LIMIT 1`, email)
}

// GetByTokenActivacion obtiene un usuario por su token de activación sin consumir.
func (r *UsuarioRepo) GetByTokenActivacion(ctx context.Context, token string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE token_activacion = $1`, token)
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.Documento, &u.PasswordHash, &u.Activo, &u.TokenActivacion,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, email = $3, documento = $4, password_hash = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, u.ID, u.Nombre, u.Email, u.Documento, u.PasswordHash, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Activar marca al usuario como activo y consume el token de un solo uso.
func (r *UsuarioRepo) Activar(ctx context.Context, id int64) error {
	query := `UPDATE usuarios SET activo = TRUE, token_activacion = NULL, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("activar usuario: %w", err)
	}
	return nil
}

// Desactivar baja lógica del usuario.
func (r *UsuarioRepo) Desactivar(ctx context.Context, id int64) error {
	query := `UPDATE usuarios SET activo = FALSE, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("desactivar usuario: %w", err)
	}
	return nil
}

// List lista usuarios con paginación.
func (r *UsuarioRepo) List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.Documento, &u.PasswordHash, &u.Activo, &u.TokenActivacion, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
