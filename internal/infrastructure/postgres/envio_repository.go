package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.EnvioRepository = (*EnvioRepo)(nil)

// EnvioRepo implementación de EnvioRepository sobre PostgreSQL.
type EnvioRepo struct {
	q Querier
}

func NewEnvioRepository(q Querier) *EnvioRepo {
	return &EnvioRepo{q: q}
}

const envioCols = `id, lote, asunto, cuerpo_html, creado_por, created_at`

// Create persiste la cabecera del envío y una fila pendiente por destinatario.
func (r *EnvioRepo) Create(ctx context.Context, e *entity.EnvioMasivo, emails []string) error {
	query := `
		INSERT INTO envios_masivos (lote, asunto, cuerpo_html, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, e.Lote, e.Asunto, e.CuerpoHTML, e.CreadoPor, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert envio: %w", err)
	}
	destQuery := `
		INSERT INTO envios_destinatarios (envio_id, email, estado)
		VALUES ($1, $2, $3)`
	for _, email := range emails {
		if _, err := r.q.Exec(ctx, destQuery, e.ID, email, entity.EnvioPendiente); err != nil {
			return fmt.Errorf("insert destinatario: %w", err)
		}
	}
	return nil
}

func (r *EnvioRepo) GetByID(ctx context.Context, id int64) (*entity.EnvioMasivo, error) {
	var e entity.EnvioMasivo
	err := r.q.QueryRow(ctx, `SELECT `+envioCols+` FROM envios_masivos WHERE id = $1`, id).Scan(
		&e.ID, &e.Lote, &e.Asunto, &e.CuerpoHTML, &e.CreadoPor, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get envio: %w", err)
	}
	return &e, nil
}

func (r *EnvioRepo) List(ctx context.Context, limit, offset int) ([]*entity.EnvioMasivo, error) {
	rows, err := r.q.Query(ctx, `SELECT `+envioCols+` FROM envios_masivos ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list envios: %w", err)
	}
	defer rows.Close()
	var list []*entity.EnvioMasivo
	for rows.Next() {
		var e entity.EnvioMasivo
		if err := rows.Scan(&e.ID, &e.Lote, &e.Asunto, &e.CuerpoHTML, &e.CreadoPor, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan envio: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *EnvioRepo) ListDestinatarios(ctx context.Context, envioID int64) ([]*entity.EnvioDestinatario, error) {
	query := `
		SELECT id, envio_id, email, estado, error, enviado_en
		FROM envios_destinatarios
		WHERE envio_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, envioID)
	if err != nil {
		return nil, fmt.Errorf("list destinatarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.EnvioDestinatario
	for rows.Next() {
		var d entity.EnvioDestinatario
		if err := rows.Scan(&d.ID, &d.EnvioID, &d.Email, &d.Estado, &d.Error, &d.EnviadoEn); err != nil {
			return nil, fmt.Errorf("scan destinatario: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// PendientesParaEnvio trae hasta n destinatarios pendientes con sus campañas,
// en orden de llegada.
func (r *EnvioRepo) PendientesParaEnvio(ctx context.Context, n int) ([]*entity.EnvioDestinatario, map[int64]*entity.EnvioMasivo, error) {
	query := `
		SELECT d.id, d.envio_id, d.email, d.estado, d.error, d.enviado_en,
		       e.id, e.lote, e.asunto, e.cuerpo_html, e.creado_por, e.created_at
		FROM envios_destinatarios d
		JOIN envios_masivos e ON e.id = d.envio_id
		WHERE d.estado = $1
		ORDER BY d.id
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, entity.EnvioPendiente, n)
	if err != nil {
		return nil, nil, fmt.Errorf("pendientes para envio: %w", err)
	}
	defer rows.Close()

	var pendientes []*entity.EnvioDestinatario
	envios := make(map[int64]*entity.EnvioMasivo)
	for rows.Next() {
		var d entity.EnvioDestinatario
		var e entity.EnvioMasivo
		if err := rows.Scan(
			&d.ID, &d.EnvioID, &d.Email, &d.Estado, &d.Error, &d.EnviadoEn,
			&e.ID, &e.Lote, &e.Asunto, &e.CuerpoHTML, &e.CreadoPor, &e.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scan pendiente: %w", err)
		}
		pendientes = append(pendientes, &d)
		if _, ok := envios[e.ID]; !ok {
			envios[e.ID] = &e
		}
	}
	return pendientes, envios, rows.Err()
}

func (r *EnvioRepo) MarcarEnviado(ctx context.Context, destinatarioID int64) error {
	query := `UPDATE envios_destinatarios SET estado = $2, enviado_en = $3, error = NULL WHERE id = $1`
	_, err := r.q.Exec(ctx, query, destinatarioID, entity.EnvioEnviado, time.Now())
	if err != nil {
		return fmt.Errorf("marcar enviado: %w", err)
	}
	return nil
}

func (r *EnvioRepo) MarcarFallido(ctx context.Context, destinatarioID int64, causa string) error {
	query := `UPDATE envios_destinatarios SET estado = $2, error = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, destinatarioID, entity.EnvioFallido, causa)
	if err != nil {
		return fmt.Errorf("marcar fallido: %w", err)
	}
	return nil
}
