package session

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch observa el archivo de sesión y resincroniza el manager cuando otro
// proceso lo modifica. Un logout externo se refleja como sesión vacía.
// Bloquea hasta que ctx se cancele.
func Watch(ctx context.Context, m *Manager, fs *FileStorage) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("crear watcher de sesión: %w", err)
	}
	defer watcher.Close()

	// Se observa el directorio: el archivo puede no existir aún y Save
	// escribe vía rename, que en varios sistemas reemplaza el inode.
	if err := watcher.Add(filepath.Dir(fs.Path())); err != nil {
		return fmt.Errorf("observar directorio de sesión: %w", err)
	}

	target := filepath.Base(fs.Path())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				m.resync()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher de sesión: %w", err)
		}
	}
}
