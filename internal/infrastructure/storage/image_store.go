// Package storage guarda en disco las imágenes subidas (premios y fotos de perfil).
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/publicis/rewards-api/internal/application/usecase"
)

var _ usecase.ImageStore = (*ImageStore)(nil)

// ImageStore almacenamiento local de imágenes. Los archivos se renombran con
// UUID para evitar colisiones y la ruta pública la calcula siempre el servidor.
type ImageStore struct {
	dir        string
	publicPath string
}

// NewImageStore crea el directorio si no existe.
func NewImageStore(dir, publicPath string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &ImageStore{dir: dir, publicPath: strings.TrimRight(publicPath, "/")}, nil
}

// Save escribe la imagen con un nombre nuevo y devuelve su ruta pública.
func (s *ImageStore) Save(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("extensión de imagen no permitida: %q", ext)
	}
	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return s.publicPath + "/" + name, nil
}

// Remove borra la imagen asociada a una ruta pública. Ignora rutas ajenas al store.
func (s *ImageStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, s.publicPath+"/") {
		return nil
	}
	name := path.Base(publicPath)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	return nil
}

// Dir directorio local servido como estático.
func (s *ImageStore) Dir() string { return s.dir }
