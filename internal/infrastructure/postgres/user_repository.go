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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Los roles se guardan como text[]; el id de cada rol se deriva del nombre.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, employee_number, name, email, password_hash, status, roles, active_role,
	profile_picture, manager_id, assigned_points, redeemed_points, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var roles []string
	err := row.Scan(
		&u.ID, &u.EmployeeNumber, &u.Name, &u.Email, &u.PasswordHash, &u.Status, &roles, &u.ActiveRole,
		&u.ProfilePicture, &u.ManagerID, &u.AssignedPoints, &u.RedeemedPoints, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, name := range roles {
		u.Roles = append(u.Roles, entity.Role{ID: entity.RoleID(name), Name: name})
	}
	return &u, nil
}

func roleNames(roles []entity.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, employee_number, name, email, password_hash, status, roles, active_role,
			profile_picture, manager_id, assigned_points, redeemed_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.EmployeeNumber, user.Name, user.Email, user.PasswordHash, user.Status,
		roleNames(user.Roles), user.ActiveRole, user.ProfilePicture, user.ManagerID,
		user.AssignedPoints, user.RedeemedPoints, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByIDForUpdate obtiene un usuario bloqueando su fila hasta el fin de la
// transacción (SELECT ... FOR UPDATE). Fuera de una transacción el bloqueo se
// libera de inmediato y equivale a GetByID.
func (r *UserRepo) GetByIDForUpdate(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	u, err := scanUser(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user for update: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.db.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update actualiza los campos editables de un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET employee_number = $2, name = $3, email = $4, password_hash = $5,
			status = $6, roles = $7, active_role = $8, manager_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.EmployeeNumber, user.Name, user.Email, user.PasswordHash,
		user.Status, roleNames(user.Roles), user.ActiveRole, user.ManagerID, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByRole lista usuarios que poseen un rol dado.
func (r *UserRepo) ListByRole(role string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE $1 = ANY(roles) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, role, limit, offset)
}

func (r *UserRepo) list(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// SetRoles reemplaza el conjunto de roles del usuario.
func (r *UserRepo) SetRoles(userID string, roles []entity.Role) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET roles = $2, updated_at = now() WHERE id = $1`,
		userID, roleNames(roles),
	)
	if err != nil {
		return fmt.Errorf("set roles: %w", err)
	}
	return nil
}

// SetStatus cambia el estado de la cuenta.
func (r *UserRepo) SetStatus(userID, status string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET status = $2, updated_at = now() WHERE id = $1`,
		userID, status,
	)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// SetProfilePicture persiste la ruta de la foto de perfil.
func (r *UserRepo) SetProfilePicture(userID, path string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET profile_picture = $2, updated_at = now() WHERE id = $1`,
		userID, path,
	)
	if err != nil {
		return fmt.Errorf("set profile picture: %w", err)
	}
	return nil
}

// AdjustPoints suma deltas a los contadores de huellas.
func (r *UserRepo) AdjustPoints(userID string, assignedDelta, redeemedDelta int) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET assigned_points = assigned_points + $2,
			redeemed_points = redeemed_points + $3, updated_at = now()
		WHERE id = $1`,
		userID, assignedDelta, redeemedDelta,
	)
	if err != nil {
		return fmt.Errorf("adjust points: %w", err)
	}
	return nil
}
