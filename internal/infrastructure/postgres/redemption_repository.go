package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

var _ repository.RedemptionRepository = (*RedemptionRepo)(nil)

// RedemptionRepo implementación del puerto RedemptionRepository sobre PostgreSQL.
type RedemptionRepo struct {
	db DB
}

// NewRedemptionRepository construye el adaptador de persistencia para canjes.
func NewRedemptionRepository(db DB) *RedemptionRepo {
	return &RedemptionRepo{db: db}
}

const redemptionColumns = `id, user_id, user_name, prize_id, prize_code, prize_description,
	points, status, redeemed_at, changed_by, changed_at`

func scanRedemption(row pgx.Row) (*entity.Redemption, error) {
	var r entity.Redemption
	err := row.Scan(
		&r.ID, &r.UserID, &r.UserName, &r.PrizeID, &r.PrizeCode, &r.PrizeDescription,
		&r.Points, &r.Status, &r.RedeemedAt, &r.ChangedBy, &r.ChangedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create persiste un nuevo registro de canje.
func (r *RedemptionRepo) Create(redemption *entity.Redemption) error {
	query := `
		INSERT INTO redemptions (id, user_id, user_name, prize_id, prize_code, prize_description,
			points, status, redeemed_at, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		redemption.ID, redemption.UserID, redemption.UserName, redemption.PrizeID,
		redemption.PrizeCode, redemption.PrizeDescription, redemption.Points,
		redemption.Status, redemption.RedeemedAt, redemption.ChangedBy, redemption.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("insert redemption: %w", err)
	}
	return nil
}

// GetByID obtiene un canje por ID.
func (r *RedemptionRepo) GetByID(id string) (*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE id = $1`
	red, err := scanRedemption(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get redemption by id: %w", err)
	}
	return red, nil
}

// List historial completo con paginación.
func (r *RedemptionRepo) List(limit, offset int) ([]*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions ORDER BY redeemed_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByUser historial de un usuario con paginación.
func (r *RedemptionRepo) ListByUser(userID string, limit, offset int) ([]*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions
		WHERE user_id = $1 ORDER BY redeemed_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

func (r *RedemptionRepo) list(query string, args ...any) ([]*entity.Redemption, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list redemptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Redemption
	for rows.Next() {
		red, err := scanRedemption(rows)
		if err != nil {
			return nil, fmt.Errorf("scan redemption: %w", err)
		}
		list = append(list, red)
	}
	return list, rows.Err()
}

// UpdateStatus transiciona Pendiente → Entregado|Anulado estampando auditoría.
// La guarda status = 'Pendiente' hace la transición idempotente frente a
// cambios concurrentes: el segundo pierde con ErrRedemptionClosed.
func (r *RedemptionRepo) UpdateStatus(id, status, changedBy string) (*entity.Redemption, error) {
	query := `
		UPDATE redemptions SET status = $2, changed_by = $3, changed_at = now()
		WHERE id = $1 AND status = 'Pendiente'
		RETURNING ` + redemptionColumns
	red, err := scanRedemption(r.db.QueryRow(context.Background(), query, id, status, changedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, getErr := r.GetByID(id)
			if getErr != nil {
				return nil, getErr
			}
			if existing == nil {
				return nil, domain.ErrNotFound
			}
			return nil, domain.ErrRedemptionClosed
		}
		return nil, fmt.Errorf("update redemption status: %w", err)
	}
	return red, nil
}
