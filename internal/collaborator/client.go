// Package collaborator - клиент REST API удаленного сервиса инцидентов
package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnauthorized = errors.New("collaborator: unauthorized")
	ErrForbidden    = errors.New("collaborator: forbidden")
)

const maxErrorBody = 4 << 10

// APIError - ответ сервиса с кодом вне 2xx
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("collaborator: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("collaborator: unexpected status %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

func New(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithField("component", "collaborator"),
	}
}

// ListIncidents возвращает полный список инцидентов
func (c *Client) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	var incidents []models.Incident
	if err := c.doJSON(ctx, http.MethodGet, "/incidents", nil, "", &incidents); err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return incidents, nil
}

// CreateIncident отправляет новый инцидент; авторизация не требуется
func (c *Client) CreateIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error) {
	var created models.Incident
	if err := c.doJSON(ctx, http.MethodPost, "/incidents", in, "", &created); err != nil {
		return nil, fmt.Errorf("create incident: %w", err)
	}
	return &created, nil
}

// UpdateIncident заменяет все изменяемые поля инцидента
func (c *Client) UpdateIncident(ctx context.Context, id int64, in models.IncidentInput, token string) (*models.Incident, error) {
	var updated models.Incident
	if err := c.doJSON(ctx, http.MethodPut, incidentPath("/incidents/", id), in, token, &updated); err != nil {
		return nil, fmt.Errorf("update incident %d: %w", id, err)
	}
	return &updated, nil
}

// DeleteIncident удаляет инцидент через админский маршрут
func (c *Client) DeleteIncident(ctx context.Context, id int64, token string) error {
	if err := c.doJSON(ctx, http.MethodDelete, incidentPath("/admin/incidents/", id), nil, token, nil); err != nil {
		return fmt.Errorf("delete incident %d: %w", id, err)
	}
	return nil
}

// TrendAnalysis возвращает очаги и прогнозы; токен необязателен
func (c *Client) TrendAnalysis(ctx context.Context, token string) (*models.TrendAnalysis, error) {
	var trend models.TrendAnalysis
	if err := c.doJSON(ctx, http.MethodGet, "/trend-analysis", nil, token, &trend); err != nil {
		return nil, fmt.Errorf("trend analysis: %w", err)
	}
	return &trend, nil
}

// Login обменивает учетные данные на токен. Сначала используется форма /auth/login;
// JSON /login пробуется, только если форма не отклонила учетные данные (401/403).
func (c *Client) Login(ctx context.Context, username, password string) (*models.Credential, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var cred models.Credential
	err := c.do(ctx, http.MethodPost, "/auth/login", strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", "", &cred)
	if err == nil {
		return &cred, nil
	}

	// отказ в доступе - ответ по существу, а не отсутствие маршрута
	var apiErr *APIError
	if !errors.As(err, &apiErr) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.logger.WithField("status", apiErr.StatusCode).Debug("Form login rejected, trying JSON login")

	body := map[string]string{"username": username, "password": password}
	if fallbackErr := c.doJSON(ctx, http.MethodPost, "/login", body, "", &cred); fallbackErr != nil {
		var fallbackAPIErr *APIError
		if errors.As(fallbackErr, &fallbackAPIErr) && routeMissing(fallbackAPIErr.StatusCode) {
			return nil, fmt.Errorf("login: %w", err)
		}
		return nil, fmt.Errorf("login: %w", fallbackErr)
	}
	return &cred, nil
}

func routeMissing(status int) bool {
	return status == http.StatusNotFound || status == http.StatusMethodNotAllowed
}

func incidentPath(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, token string, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, body, "application/json", token, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.logger.WithFields(logrus.Fields{"method": method, "path": path})
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request to incident service failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
		log.WithField("status", resp.StatusCode).Warn("Incident service returned an error")
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readDetail достает поле detail из тела ошибки, иначе возвращает тело как есть
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil && len(payload.Detail) > 0 {
		var text string
		if json.Unmarshal(payload.Detail, &text) == nil {
			return text
		}
		return string(payload.Detail)
	}
	return strings.TrimSpace(string(raw))
}
