// Package apiclient expone funciones de servicio tipadas sobre la API REST de
// Publicis Rewards. Toda falla se normaliza a *APIError con un mensaje apto
// para mostrar al usuario; no hay reintentos: cada error es terminal hasta que
// el usuario vuelva a intentar.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// TokenSource entrega el bearer token vigente; vacío = petición anónima.
// El cliente adjunta siempre el header Authorization de forma explícita.
type TokenSource interface {
	Token() string
}

// StaticToken TokenSource de valor fijo (útil en tests y scripts).
type StaticToken string

// Token implementa TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client cliente HTTP tipado contra la API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New construye el cliente. httpClient nil usa http.DefaultClient; los
// timeouts son responsabilidad del http.Client inyectado.
func New(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

// ImageBaseURL deriva la base de estáticos quitando el sufijo /api de la URL
// de la API (avatares e imágenes de premios se sirven fuera del prefijo).
func (c *Client) ImageBaseURL() string {
	return strings.TrimSuffix(c.baseURL, "/api")
}

// do ejecuta una petición JSON y decodifica la respuesta en out (out nil la descarta).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart ejecuta una petición multipart/form-data con campos y un archivo opcional.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, fileData []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return &APIError{Message: err.Error()}
		}
	}
	if len(fileData) > 0 {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		if _, err := fw.Write(fileData); err != nil {
			return &APIError{Message: err.Error()}
		}
	}
	if err := w.Close(); err != nil {
		return &APIError{Message: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		// Petición enviada sin respuesta: red caída, DNS, timeout del transporte.
		return &APIError{Message: ErrNoResponseMessage}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeServerError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Message: fmt.Sprintf("respuesta inesperada del servidor: %v", err)}
	}
	return nil
}
