package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publicis/rewards-api/internal/application/auth"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
	pkgjwt "github.com/publicis/rewards-api/pkg/jwt"
)

// fake mínimo de UserRepository: solo lo que auth necesita.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByIDForUpdate(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error                    { r.users[u.ID] = u; return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) ListByRole(role string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) Delete(id string) error                        { return nil }
func (r *memUserRepo) SetRoles(id string, roles []entity.Role) error { return nil }
func (r *memUserRepo) SetStatus(id, status string) error             { return nil }
func (r *memUserRepo) SetProfilePicture(id, path string) error       { return nil }
func (r *memUserRepo) AdjustPoints(id string, a, rd int) error       { return nil }

var _ repository.UserRepository = (*memUserRepo)(nil)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "publicis-rewards-test"}

func registerActiveUser(t *testing.T, uc *auth.AuthUseCase, repo *memUserRepo, email string) *entity.User {
	t.Helper()
	resp, err := uc.Register(dto.RegisterRequest{
		EmployeeNumber: "E-001",
		Name:           "Ana Muñoz",
		Email:          email,
		Password:       "secreto123",
	})
	require.NoError(t, err)
	u := repo.users[resp.ID]
	u.Status = entity.StatusActivo
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NacePendienteComoColaborador(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{
		EmployeeNumber: "E-001", Name: "Ana", Email: "ana@publicis.com", Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendiente, out.Status)
	assert.Equal(t, entity.RoleColaborador, out.ActiveRole)

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda plano")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerActiveUser(t, uc, repo, "ana@publicis.com")

	_, err := uc.Register(dto.RegisterRequest{
		EmployeeNumber: "E-002", Name: "Otra Ana", Email: "ana@publicis.com", Password: "secreto123",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConRolActivo(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerActiveUser(t, uc, repo, "ana@publicis.com")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@publicis.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, activeRole, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleColaborador, activeRole)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerActiveUser(t, uc, repo, "ana@publicis.com")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@publicis.com", Password: "otro"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Una cuenta Pendiente todavía no puede entrar.
func TestLogin_CuentaPendienteBloqueada(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{
		EmployeeNumber: "E-001", Name: "Ana", Email: "ana@publicis.com", Password: "secreto123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@publicis.com", Password: "secreto123"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de rol activo
// ──────────────────────────────────────────────────────────────────────────────

func TestSwitchRole_EmiteTokenNuevo(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	u := registerActiveUser(t, uc, repo, "ana@publicis.com")
	u.Roles = append(u.Roles, entity.Role{ID: 2, Name: entity.RoleManager})

	out, err := uc.SwitchRole(u.ID, dto.SwitchRoleRequest{Role: entity.RoleManager})
	require.NoError(t, err)

	_, activeRole, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, activeRole)
	assert.Equal(t, entity.RoleManager, repo.users[u.ID].ActiveRole, "el cambio se persiste")
}

func TestSwitchRole_RolNoPoseido(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	u := registerActiveUser(t, uc, repo, "ana@publicis.com")

	_, err := uc.SwitchRole(u.ID, dto.SwitchRoleRequest{Role: entity.RoleAdministrador})
	require.ErrorIs(t, err, domain.ErrRoleNotHeld)
	assert.Equal(t, entity.RoleColaborador, repo.users[u.ID].ActiveRole)
}
