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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	db DB
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, code, description, points, is_automatic, subcategories, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.BadgeCategory, error) {
	var c entity.BadgeCategory
	err := row.Scan(&c.ID, &c.Code, &c.Description, &c.Points, &c.IsAutomatic, &c.Subcategories, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.BadgeCategory) error {
	query := `
		INSERT INTO badge_categories (id, code, description, points, is_automatic, subcategories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		category.ID, category.Code, category.Description, category.Points,
		category.IsAutomatic, category.Subcategories, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.BadgeCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM badge_categories WHERE id = $1`
	c, err := scanCategory(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// GetByCode obtiene una categoría por código.
func (r *CategoryRepo) GetByCode(code string) (*entity.BadgeCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM badge_categories WHERE code = $1`
	c, err := scanCategory(r.db.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by code: %w", err)
	}
	return c, nil
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(category *entity.BadgeCategory) error {
	query := `
		UPDATE badge_categories SET description = $2, points = $3, is_automatic = $4,
			subcategories = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		category.ID, category.Description, category.Points, category.IsAutomatic,
		category.Subcategories, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías con paginación.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.BadgeCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM badge_categories ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

// ListManual lista solo categorías no automáticas.
func (r *CategoryRepo) ListManual() ([]*entity.BadgeCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM badge_categories WHERE NOT is_automatic ORDER BY code`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list manual categories: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

func collectCategories(rows pgx.Rows) ([]*entity.BadgeCategory, error) {
	var list []*entity.BadgeCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM badge_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
