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

var _ repository.PrizeRepository = (*PrizeRepo)(nil)

// PrizeRepo implementación del puerto PrizeRepository sobre PostgreSQL.
type PrizeRepo struct {
	db DB
}

// NewPrizeRepository construye el adaptador de persistencia para premios.
func NewPrizeRepository(db DB) *PrizeRepo {
	return &PrizeRepo{db: db}
}

const prizeColumns = `id, code, description, image_path, cost, stock, is_active, created_at, updated_at`

func scanPrize(row pgx.Row) (*entity.Prize, error) {
	var p entity.Prize
	err := row.Scan(&p.ID, &p.Code, &p.Description, &p.ImagePath, &p.Cost, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo premio.
func (r *PrizeRepo) Create(prize *entity.Prize) error {
	query := `
		INSERT INTO prizes (id, code, description, image_path, cost, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		prize.ID, prize.Code, prize.Description, prize.ImagePath, prize.Cost,
		prize.Stock, prize.IsActive, prize.CreatedAt, prize.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert prize: %w", err)
	}
	return nil
}

// GetByID obtiene un premio por ID.
func (r *PrizeRepo) GetByID(id string) (*entity.Prize, error) {
	query := `SELECT ` + prizeColumns + ` FROM prizes WHERE id = $1`
	p, err := scanPrize(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prize by id: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un premio por código.
func (r *PrizeRepo) GetByCode(code string) (*entity.Prize, error) {
	query := `SELECT ` + prizeColumns + ` FROM prizes WHERE code = $1`
	p, err := scanPrize(r.db.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prize by code: %w", err)
	}
	return p, nil
}

// Update actualiza un premio.
func (r *PrizeRepo) Update(prize *entity.Prize) error {
	query := `
		UPDATE prizes SET description = $2, image_path = $3, cost = $4, stock = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		prize.ID, prize.Description, prize.ImagePath, prize.Cost, prize.Stock,
		prize.IsActive, prize.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prize: %w", err)
	}
	return nil
}

// List lista premios con paginación.
func (r *PrizeRepo) List(limit, offset int) ([]*entity.Prize, error) {
	query := `SELECT ` + prizeColumns + ` FROM prizes ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prizes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prize
	for rows.Next() {
		p, err := scanPrize(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prize: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SetActive cambia el estado activo de un premio.
func (r *PrizeRepo) SetActive(id string, active bool) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE prizes SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set prize active: %w", err)
	}
	return nil
}

// DecrementStock descuenta una unidad de stock de forma atómica; el premio
// queda inactivo al llegar a 0. La guarda stock > 0 evita sobreventa bajo
// canjes concurrentes.
func (r *PrizeRepo) DecrementStock(id string) (*entity.Prize, error) {
	query := `
		UPDATE prizes SET stock = stock - 1, is_active = (stock - 1 > 0), updated_at = now()
		WHERE id = $1 AND stock > 0
		RETURNING ` + prizeColumns
	p, err := scanPrize(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutOfStock
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	return p, nil
}

// RestoreStock repone una unidad y reactiva el premio en una sola sentencia,
// sin pisar escrituras concurrentes sobre la fila.
func (r *PrizeRepo) RestoreStock(id string) error {
	tag, err := r.db.Exec(context.Background(),
		`UPDATE prizes SET stock = stock + 1, is_active = true, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un premio por ID.
func (r *PrizeRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM prizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prize: %w", err)
	}
	return nil
}
