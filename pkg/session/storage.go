package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSession no hay sesión persistida.
var ErrNoSession = errors.New("sesión no encontrada")

// Storage persistencia de la sesión. Las implementaciones deben tolerar
// lecturas de datos corruptos devolviendo error, nunca pánico.
type Storage interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// FileStorage guarda la sesión como JSON en disco. El archivo puede ser
// compartido por varios procesos; ver Watcher para la resincronización.
type FileStorage struct {
	path string
}

// NewFileStorage crea el directorio contenedor si no existe.
func NewFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de sesión: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// Path ruta del archivo de sesión.
func (s *FileStorage) Path() string { return s.path }

// Load implementa Storage.
func (s *FileStorage) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, ErrNoSession
		}
		return State{}, fmt.Errorf("leer sesión: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("sesión corrupta: %w", err)
	}
	return st, nil
}

// Save implementa Storage. Escritura atómica vía rename.
func (s *FileStorage) Save(st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Clear implementa Storage.
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
