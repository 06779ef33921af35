package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/mapper"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase aplica reglas de negocio para usuarios: altas de administración,
// asignación de roles, activación/desactivación de cuentas y foto de perfil.
type UserUseCase struct {
	repo   repository.UserRepository
	images ImageStore
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, images ImageStore) *UserUseCase {
	return &UserUseCase{repo: repo, images: images}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapper.UserToResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := mapper.UserToResponse(user)
	return &resp, nil
}

// Create alta directa por un administrador: la cuenta nace Activa.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserMessageResponse, error) {
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleColaborador
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
		Status:         entity.StatusActivo,
		Roles:          []entity.Role{{ID: entity.RoleID(role), Name: role}},
		ActiveRole:     role,
		ManagerID:      in.ManagerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserMessageResponse{
		User:    mapper.UserToResponse(user),
		Message: "Usuario creado correctamente",
	}, nil
}

// Update aplica solo los campos presentes (semántica de merge).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserMessageResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.EmployeeNumber != nil {
		user.EmployeeNumber = *in.EmployeeNumber
	}
	if in.ManagerID != nil {
		user.ManagerID = *in.ManagerID
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return &dto.UserMessageResponse{
		User:    mapper.UserToResponse(user),
		Message: "Usuario actualizado correctamente",
	}, nil
}

// AssignRoles reemplaza el conjunto de roles. Si el rol activo deja de estar
// entre los asignados, pasa al primero de la lista nueva.
func (uc *UserUseCase) AssignRoles(id string, in dto.AssignRolesRequest) (*dto.UserMessageResponse, error) {
	if len(in.Roles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	roles := make([]entity.Role, 0, len(in.Roles))
	for _, name := range in.Roles {
		if !entity.ValidRole(name) {
			return nil, domain.ErrInvalidInput
		}
		roles = append(roles, entity.Role{ID: entity.RoleID(name), Name: name})
	}
	if err := uc.repo.SetRoles(id, roles); err != nil {
		return nil, err
	}
	user.Roles = roles
	if !user.HasRole(user.ActiveRole) {
		user.ActiveRole = roles[0].Name
		user.UpdatedAt = time.Now()
		if err := uc.repo.Update(user); err != nil {
			return nil, err
		}
	}
	return &dto.UserMessageResponse{
		User:    mapper.UserToResponse(user),
		Message: "Roles asignados correctamente",
	}, nil
}

// ToggleAccount alterna Activo ↔ Inactivo. Una cuenta Pendiente se activa.
func (uc *UserUseCase) ToggleAccount(id string) (*dto.UserMessageResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	status := entity.StatusActivo
	if user.Status == entity.StatusActivo {
		status = entity.StatusInactivo
	}
	if err := uc.repo.SetStatus(id, status); err != nil {
		return nil, err
	}
	user.Status = status
	msg := "Cuenta activada correctamente"
	if status == entity.StatusInactivo {
		msg = "Cuenta desactivada correctamente"
	}
	return &dto.UserMessageResponse{
		User:    mapper.UserToResponse(user),
		Message: msg,
	}, nil
}

// UpdateProfilePicture guarda la imagen subida y persiste la ruta calculada.
func (uc *UserUseCase) UpdateProfilePicture(id, filename string, data []byte) (*dto.UserMessageResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	path, err := uc.images.Save(filename, data)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SetProfilePicture(id, path); err != nil {
		return nil, err
	}
	if user.ProfilePicture != "" {
		_ = uc.images.Remove(user.ProfilePicture)
	}
	user.ProfilePicture = path
	return &dto.UserMessageResponse{
		User:    mapper.UserToResponse(user),
		Message: "Foto de perfil actualizada",
	}, nil
}

// Balance saldo de huellas de un usuario.
func (uc *UserUseCase) Balance(id string) (*dto.BalanceResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.BalanceResponse{
		UserID:          user.ID,
		AssignedPoints:  user.AssignedPoints,
		RedeemedPoints:  user.RedeemedPoints,
		AvailablePoints: user.AvailablePoints(),
	}, nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) (*dto.MessageResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Usuario eliminado correctamente"}, nil
}
