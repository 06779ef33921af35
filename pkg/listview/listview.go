// Package listview aplica filtro, orden y paginación en memoria sobre listas
// ya cargadas. La entrada nunca se muta; cada Apply parte de la lista original,
// por lo que aplicar la misma consulta dos veces da el mismo resultado.
package listview

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer quita diacríticos: "Canjeó" y "canjeo" comparan igual.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para comparación: sin tildes y en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Query consulta declarativa sobre una lista. El orden de aplicación es
// filtro de texto, predicados, rango de fechas, orden y paginación.
type Query[T any] struct {
	// Text término libre; si es vacío no filtra. Coincide por subcadena,
	// sin distinguir mayúsculas ni tildes, sobre TextFields.
	Text       string
	TextFields []func(T) string

	// Filters predicados estructurados (estado, rol, etc.). Todos deben cumplirse.
	Filters []func(T) bool

	// Rango de fecha calendario, inclusivo en ambos extremos. DateField nil
	// desactiva el rango.
	DateField func(T) time.Time
	DateFrom  *time.Time
	DateTo    *time.Time

	// Less orden por una sola clave; nil conserva el orden de llegada.
	// Desc invierte el sentido. El orden es estable.
	Less func(a, b T) bool
	Desc bool

	// Page es base cero; PageSize <= 0 desactiva la paginación.
	Page     int
	PageSize int
}

// Apply evalúa la consulta y devuelve una lista nueva.
func (q Query[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	term := Fold(strings.TrimSpace(q.Text))
	for _, it := range items {
		if term != "" && !q.matchesText(it, term) {
			continue
		}
		if !q.matchesFilters(it) {
			continue
		}
		if !q.matchesDateRange(it) {
			continue
		}
		out = append(out, it)
	}

	if q.Less != nil {
		less := q.Less
		if q.Desc {
			sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
		} else {
			sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
		}
	}

	return q.paginate(out)
}

// Total cuenta los elementos que pasan los filtros, sin paginar. Útil para
// calcular el número de páginas.
func (q Query[T]) Total(items []T) int {
	page := q
	page.PageSize = 0
	page.Less = nil
	return len(page.Apply(items))
}

func (q Query[T]) matchesText(it T, term string) bool {
	for _, field := range q.TextFields {
		if strings.Contains(Fold(field(it)), term) {
			return true
		}
	}
	return false
}

func (q Query[T]) matchesFilters(it T) bool {
	for _, f := range q.Filters {
		if !f(it) {
			return false
		}
	}
	return true
}

// matchesDateRange compara fechas calendario, no instantes: un registro del
// 2024-05-15 a cualquier hora entra en un rango que termina el 2024-05-15.
func (q Query[T]) matchesDateRange(it T) bool {
	if q.DateField == nil || (q.DateFrom == nil && q.DateTo == nil) {
		return true
	}
	day := calendarDay(q.DateField(it))
	if q.DateFrom != nil && day.Before(calendarDay(*q.DateFrom)) {
		return false
	}
	if q.DateTo != nil && day.After(calendarDay(*q.DateTo)) {
		return false
	}
	return true
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (q Query[T]) paginate(items []T) []T {
	if q.PageSize <= 0 {
		return items
	}
	start := q.Page * q.PageSize
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + q.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
