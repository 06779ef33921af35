package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/mapper"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
	"github.com/publicis/rewards-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y cambio de rol activo.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// La cuenta nace Pendiente con rol Colaborador hasta que un administrador la active.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		EmployeeNumber: in.EmployeeNumber,
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Status:         entity.StatusPendiente,
		Roles:          []entity.Role{{ID: 4, Name: entity.RoleColaborador}},
		ActiveRole:     entity.RoleColaborador,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	resp := mapper.UserToResponse(user)
	return &resp, nil
}

// Login verifica email/password, genera JWT con el rol activo y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ActiveRole, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  mapper.UserToResponse(user),
	}, nil
}

// SwitchRole cambia el rol activo del usuario y emite un token nuevo con ese rol.
// El usuario debe poseer el rol solicitado; devuelve ErrRoleNotHeld si no.
func (uc *AuthUseCase) SwitchRole(userID string, in dto.SwitchRoleRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.HasRole(in.Role) {
		return nil, domain.ErrRoleNotHeld
	}
	user.ActiveRole = in.Role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ActiveRole, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  mapper.UserToResponse(user),
	}, nil
}
