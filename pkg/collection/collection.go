// Package collection mantiene en memoria una lista respaldada por un recurso
// remoto. Las mutaciones llaman primero al servidor y solo al confirmarse
// aplican el parche local, evitando un refetch completo por cada escritura.
package collection

import (
	"context"
	"sync"
)

// Fetcher trae la lista completa desde el origen remoto.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Snapshot estado observable de la colección en un instante.
type Snapshot[T any] struct {
	Items   []T
	Loading bool
	Err     error
}

// Collection lista remota con parches locales tras mutaciones exitosas.
// Seguro para uso concurrente.
type Collection[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     error

	fetch Fetcher[T]
	id    func(T) string

	// seq crece con cada Refresh; una respuesta solo se aplica si sigue
	// siendo la más reciente, así una carga lenta no pisa a una nueva.
	seq    uint64
	cancel context.CancelFunc
}

// New construye la colección. id extrae el identificador estable de un elemento.
func New[T any](fetch Fetcher[T], id func(T) string) *Collection[T] {
	return &Collection[T]{fetch: fetch, id: id}
}

// Snapshot devuelve una copia del estado actual.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{Items: items, Loading: c.loading, Err: c.err}
}

// Refresh recarga la lista completa. Si otra recarga arranca mientras esta
// sigue en vuelo, el resultado de la vieja se descarta.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	items, err := c.fetch(fetchCtx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return nil // respuesta obsoleta
	}
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.items = items
	return nil
}

// Create ejecuta la mutación remota y, si confirma, agrega el elemento devuelto.
func (c *Collection[T]) Create(ctx context.Context, do func(ctx context.Context) (T, error)) (T, error) {
	created, err := do(ctx)
	if err != nil {
		return created, err
	}
	c.mu.Lock()
	c.items = append(c.items, created)
	c.mu.Unlock()
	return created, nil
}

// Update ejecuta la mutación remota y, si confirma, reemplaza el elemento con
// el mismo id por la versión del servidor. Si el id no está, no hace nada.
func (c *Collection[T]) Update(ctx context.Context, do func(ctx context.Context) (T, error)) (T, error) {
	updated, err := do(ctx)
	if err != nil {
		return updated, err
	}
	key := c.id(updated)
	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == key {
			c.items[i] = updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

// Remove ejecuta la mutación remota y, si confirma, quita el elemento por id.
func (c *Collection[T]) Remove(ctx context.Context, itemID string, do func(ctx context.Context) error) error {
	if err := do(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// Apply ejecuta la mutación remota y, si confirma, transforma la lista con
// patch. Para efectos que tocan más de un elemento o campos derivados, por
// ejemplo un canje que descuenta stock y recalcula disponibilidad.
func (c *Collection[T]) Apply(ctx context.Context, do func(ctx context.Context) error, patch func(items []T) []T) error {
	if err := do(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.items = patch(c.items)
	c.mu.Unlock()
	return nil
}

// Close cancela cualquier recarga en vuelo.
func (c *Collection[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
