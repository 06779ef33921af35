package apiclient

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrNoResponseMessage mensaje fijo cuando la petición salió pero no llegó respuesta.
const ErrNoResponseMessage = "no se recibió respuesta del servidor"

// APIError error normalizado de la API: un único tipo con un mensaje legible.
// Los providers y las vistas solo dependen de Error()/Message.
type APIError struct {
	StatusCode int // 0 si no hubo respuesta
	Message    string
}

// Error implementa error.
func (e *APIError) Error() string { return e.Message }

// normalizeServerError colapsa el cuerpo de una respuesta de error a un mensaje:
//   - cuerpo JSON con campo "message": ese mensaje, textual
//   - cuerpo JSON string: ese string
//   - cuerpo de texto plano no vacío: el texto tal cual
//   - cuerpo vacío: el status HTTP
func normalizeServerError(status int, body []byte) *APIError {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return &APIError{StatusCode: status, Message: http.StatusText(status)}
	}
	var withMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Message != "" {
		return &APIError{StatusCode: status, Message: withMessage.Message}
	}
	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return &APIError{StatusCode: status, Message: plain}
	}
	return &APIError{StatusCode: status, Message: text}
}
