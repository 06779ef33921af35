// Package session mantiene la sesión autenticada (token + usuario + rol
// activo) respaldada por un Storage. Varios procesos pueden compartir el
// mismo archivo de sesión; Watch los mantiene sincronizados.
package session

import (
	"errors"
	"sync"
)

// User datos del usuario en sesión.
type User struct {
	ID             string   `json:"id"`
	EmployeeNumber string   `json:"employeeNumber"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Roles          []string `json:"roles"`
	ActiveRole     string   `json:"activeRole"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
}

// State sesión persistida.
type State struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// valid chequeo mínimo de forma: sin nombre, email o rol activo la sesión
// se considera corrupta y se descarta en la hidratación.
func (s State) valid() bool {
	return s.Token != "" && s.User != nil &&
		s.User.Name != "" && s.User.Email != "" && s.User.ActiveRole != ""
}

// ErrRoleNotHeld el usuario no posee el rol pedido.
var ErrRoleNotHeld = errors.New("el usuario no tiene asignado ese rol")

// Manager estado de sesión en memoria con persistencia. Seguro para uso
// concurrente. Implementa apiclient.TokenSource.
type Manager struct {
	mu       sync.RWMutex
	storage  Storage
	state    State
	onChange []func(State)
}

// NewManager hidrata desde storage. Una sesión ilegible o con forma inválida
// se limpia en silencio y el manager arranca sin sesión.
func NewManager(storage Storage) (*Manager, error) {
	m := &Manager{storage: storage}
	st, err := storage.Load()
	switch {
	case errors.Is(err, ErrNoSession):
		// arranque limpio
	case err != nil:
		if clearErr := storage.Clear(); clearErr != nil {
			return nil, clearErr
		}
	case !st.valid():
		if clearErr := storage.Clear(); clearErr != nil {
			return nil, clearErr
		}
	default:
		m.state = st
	}
	return m, nil
}

// Token implementa apiclient.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

// Current devuelve la sesión vigente (User es una copia).
func (m *Manager) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := m.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// IsAuthenticated indica si hay sesión activa.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.valid()
}

// Login persiste una sesión nueva y notifica a los suscriptores.
func (m *Manager) Login(token string, user User) error {
	st := State{Token: token, User: &user}
	if !st.valid() {
		return errors.New("sesión incompleta")
	}
	if err := m.storage.Save(st); err != nil {
		return err
	}
	m.setState(st)
	return nil
}

// Logout limpia la sesión persistida y la de memoria.
func (m *Manager) Logout() error {
	if err := m.storage.Clear(); err != nil {
		return err
	}
	m.setState(State{})
	return nil
}

// SwitchActiveRole cambia el rol activo; el usuario debe poseer el rol.
// token es el emitido por el servidor para el rol nuevo.
func (m *Manager) SwitchActiveRole(role, token string) error {
	m.mu.Lock()
	if m.state.User == nil {
		m.mu.Unlock()
		return ErrNoSession
	}
	held := false
	for _, r := range m.state.User.Roles {
		if r == role {
			held = true
			break
		}
	}
	if !held {
		m.mu.Unlock()
		return ErrRoleNotHeld
	}
	u := *m.state.User
	u.ActiveRole = role
	st := State{Token: token, User: &u}
	m.mu.Unlock()

	if err := m.storage.Save(st); err != nil {
		return err
	}
	m.setState(st)
	return nil
}

// OnChange registra un callback invocado tras cada cambio de sesión,
// incluidos los detectados por Watch.
func (m *Manager) OnChange(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// resync recarga desde storage; usado por el watcher ante cambios externos.
func (m *Manager) resync() {
	st, err := m.storage.Load()
	if err != nil || !st.valid() {
		st = State{}
	}
	m.setState(st)
}

func (m *Manager) setState(st State) {
	m.mu.Lock()
	m.state = st
	subs := make([]func(State), len(m.onChange))
	copy(subs, m.onChange)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}
