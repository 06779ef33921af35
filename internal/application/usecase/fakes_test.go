package usecase_test

import (
	"context"
	"time"

	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Sin semántica de rollback:
// los tests verifican estado solo en caminos donde la transacción confirma o
// donde la regla corta antes de mutar nada.

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[string]*entity.User
	locked []string // ids leídos con bloqueo de fila
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByIDForUpdate(id string) (*entity.User, error) {
	r.locked = append(r.locked, id)
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(role string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.HasRole(role) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SetRoles(userID string, roles []entity.Role) error {
	u := r.users[userID]
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.Roles = roles
	return nil
}

func (r *fakeUserRepo) SetStatus(userID, status string) error {
	u := r.users[userID]
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) SetProfilePicture(userID, path string) error {
	u := r.users[userID]
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.ProfilePicture = path
	return nil
}

func (r *fakeUserRepo) AdjustPoints(userID string, assignedDelta, redeemedDelta int) error {
	u := r.users[userID]
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.AssignedPoints += assignedDelta
	u.RedeemedPoints += redeemedDelta
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignaciones
// ──────────────────────────────────────────────────────────────────────────────

type fakeAssignmentRepo struct {
	items []*entity.BadgeAssignment
}

func (r *fakeAssignmentRepo) Create(a *entity.BadgeAssignment) error {
	r.items = append(r.items, a)
	return nil
}

func (r *fakeAssignmentRepo) GetByID(id string) (*entity.BadgeAssignment, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) ListByKind(kind string, limit, offset int) ([]*entity.BadgeAssignment, error) {
	var out []*entity.BadgeAssignment
	for _, a := range r.items {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) ListByRecipient(recipientID string, limit, offset int) ([]*entity.BadgeAssignment, error) {
	var out []*entity.BadgeAssignment
	for _, a := range r.items {
		if a.RecipientID == recipientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) SumByAssigner(assignerID, kind string) (int, error) {
	total := 0
	for _, a := range r.items {
		if a.AssignerID == assignerID && a.Kind == kind {
			total += a.Points
		}
	}
	return total, nil
}

func (r *fakeAssignmentRepo) Delete(id string) error {
	for i, a := range r.items {
		if a.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Premios
// ──────────────────────────────────────────────────────────────────────────────

type fakePrizeRepo struct {
	prizes map[string]*entity.Prize
}

func newFakePrizeRepo(prizes ...*entity.Prize) *fakePrizeRepo {
	r := &fakePrizeRepo{prizes: map[string]*entity.Prize{}}
	for _, p := range prizes {
		r.prizes[p.ID] = p
	}
	return r
}

func (r *fakePrizeRepo) Create(p *entity.Prize) error {
	r.prizes[p.ID] = p
	return nil
}

func (r *fakePrizeRepo) GetByID(id string) (*entity.Prize, error) {
	return r.prizes[id], nil
}

func (r *fakePrizeRepo) GetByCode(code string) (*entity.Prize, error) {
	for _, p := range r.prizes {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePrizeRepo) Update(p *entity.Prize) error {
	if _, ok := r.prizes[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.prizes[p.ID] = p
	return nil
}

func (r *fakePrizeRepo) List(limit, offset int) ([]*entity.Prize, error) {
	out := make([]*entity.Prize, 0, len(r.prizes))
	for _, p := range r.prizes {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePrizeRepo) SetActive(id string, active bool) error {
	p := r.prizes[id]
	if p == nil {
		return domain.ErrNotFound
	}
	p.IsActive = active
	return nil
}

func (r *fakePrizeRepo) DecrementStock(id string) (*entity.Prize, error) {
	p := r.prizes[id]
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Stock == 0 {
		return nil, domain.ErrOutOfStock
	}
	p.Stock--
	p.IsActive = p.Stock > 0
	return p, nil
}

func (r *fakePrizeRepo) RestoreStock(id string) error {
	p := r.prizes[id]
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock++
	p.IsActive = true
	return nil
}

func (r *fakePrizeRepo) Delete(id string) error {
	delete(r.prizes, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Canjes
// ──────────────────────────────────────────────────────────────────────────────

type fakeRedemptionRepo struct {
	items []*entity.Redemption
}

func (r *fakeRedemptionRepo) Create(red *entity.Redemption) error {
	r.items = append(r.items, red)
	return nil
}

func (r *fakeRedemptionRepo) GetByID(id string) (*entity.Redemption, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeRedemptionRepo) List(limit, offset int) ([]*entity.Redemption, error) {
	return r.items, nil
}

func (r *fakeRedemptionRepo) ListByUser(userID string, limit, offset int) ([]*entity.Redemption, error) {
	var out []*entity.Redemption
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRedemptionRepo) UpdateStatus(id, status, changedBy string) (*entity.Redemption, error) {
	for _, it := range r.items {
		if it.ID != id {
			continue
		}
		if it.Status != entity.RedemptionPendiente {
			return nil, domain.ErrRedemptionClosed
		}
		now := time.Now()
		it.Status = status
		it.ChangedBy = changedBy
		it.ChangedAt = &now
		return it, nil
	}
	return nil, domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.BadgeCategory
}

func newFakeCategoryRepo(categories ...*entity.BadgeCategory) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[string]*entity.BadgeCategory{}}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.BadgeCategory) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.BadgeCategory, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetByCode(code string) (*entity.BadgeCategory, error) {
	for _, c := range r.categories {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.BadgeCategory) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.BadgeCategory, error) {
	out := make([]*entity.BadgeCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListManual() ([]*entity.BadgeCategory, error) {
	var out []*entity.BadgeCategory
	for _, c := range r.categories {
		if !c.IsAutomatic {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner e imágenes
// ──────────────────────────────────────────────────────────────────────────────

type fakeTx struct {
	users       *fakeUserRepo
	assignments *fakeAssignmentRepo
	prizes      *fakePrizeRepo
	redemptions *fakeRedemptionRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	assignmentRepo repository.AssignmentRepository,
	prizeRepo repository.PrizeRepository,
	redemptionRepo repository.RedemptionRepository,
) error) error {
	return fn(t.users, t.assignments, t.prizes, t.redemptions)
}

type fakeImages struct {
	saved   []string
	removed []string
}

func (f *fakeImages) Save(filename string, data []byte) (string, error) {
	path := "/uploads/" + filename
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeImages) Remove(publicPath string) error {
	f.removed = append(f.removed, publicPath)
	return nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.AssignmentRepository = (*fakeAssignmentRepo)(nil)
	_ repository.PrizeRepository      = (*fakePrizeRepo)(nil)
	_ repository.RedemptionRepository = (*fakeRedemptionRepo)(nil)
	_ repository.CategoryRepository   = (*fakeCategoryRepo)(nil)
	_ usecase.TxRunner                = (*fakeTx)(nil)
	_ usecase.ImageStore              = (*fakeImages)(nil)
)
