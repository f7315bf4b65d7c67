package remote

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

	"github.com/shenikar/rescue_dashboard/internal/models"
)

var (
	ErrUnauthorized = errors.New("remote: unauthorized")
	ErrNotFound     = errors.New("remote: not found")
)

// StatusError - ответ удаленного API с кодом вне диапазона 2xx
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote: %s %s returned status %d", e.Method, e.Path, e.Code)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

// Observer получает длительность и исход каждого вызова удаленного API
type Observer interface {
	ObserveRemoteCall(endpoint, outcome string, duration time.Duration)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

type ClientOptions struct {
	Timeout  time.Duration
	Observer Observer
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout: 10 * time.Second,
	}
}

func NewClient(baseURL string, options ...ClientOptions) *Client {
	opts := DefaultClientOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: opts.Timeout},
		observer:   opts.Observer,
	}
}

func (c *Client) ListIncidents(ctx context.Context, token string) ([]*models.Incident, error) {
	raw, err := c.do(ctx, http.MethodGet, "/incidents", "incidents.list", token, nil)
	if err != nil {
		return nil, err
	}
	var incidents []*models.Incident
	if err := decodeEnvelope(raw, &incidents, "data", "incidents"); err != nil {
		return nil, fmt.Errorf("failed to decode incidents: %w", err)
	}
	if incidents == nil {
		incidents = make([]*models.Incident, 0)
	}
	return incidents, nil
}

func (c *Client) GetIncident(ctx context.Context, token, id string) (*models.Incident, error) {
	raw, err := c.do(ctx, http.MethodGet, "/incidents/"+url.PathEscape(id), "incidents.get", token, nil)
	if err != nil {
		return nil, err
	}
	incident := &models.Incident{}
	if err := decodeEnvelope(raw, incident, "data", "incident"); err != nil {
		return nil, fmt.Errorf("failed to decode incident: %w", err)
	}
	return incident, nil
}

type statusUpdateRequest struct {
	Status models.IncidentStatus `json:"status"`
}

// UpdateIncidentStatus отправляет PUT со статусом. Если бэкенд вернул
// пустое тело, возвращается nil без ошибки.
func (c *Client) UpdateIncidentStatus(ctx context.Context, token, id string, status models.IncidentStatus) (*models.Incident, error) {
	body, err := json.Marshal(statusUpdateRequest{Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPut, "/incidents/"+url.PathEscape(id)+"/status", "incidents.update_status", token, body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	incident := &models.Incident{}
	if err := decodeEnvelope(raw, incident, "data", "incident"); err != nil {
		return nil, fmt.Errorf("failed to decode incident: %w", err)
	}
	if incident.ID == "" {
		return nil, nil
	}
	return incident, nil
}

func (c *Client) GetVolunteer(ctx context.Context, token, id string) (*models.Volunteer, error) {
	raw, err := c.do(ctx, http.MethodGet, "/volunteers/"+url.PathEscape(id), "volunteers.get", token, nil)
	if err != nil {
		return nil, err
	}
	volunteer := &models.Volunteer{}
	if err := decodeEnvelope(raw, volunteer, "data", "volunteer"); err != nil {
		return nil, fmt.Errorf("failed to decode volunteer: %w", err)
	}
	return volunteer, nil
}

func (c *Client) GetNGOStats(ctx context.Context, token string) (*models.Stats, error) {
	raw, err := c.do(ctx, http.MethodGet, "/ngo/overview", "ngo.overview", token, nil)
	if err != nil {
		return nil, err
	}
	stats := &models.Stats{}
	if err := decodeEnvelope(raw, stats, "data", "stats"); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return stats, nil
}

func (c *Client) FitbitConnect(ctx context.Context, token string) (*models.FitbitConnect, error) {
	raw, err := c.do(ctx, http.MethodGet, "/fitbit/connect", "fitbit.connect", token, nil)
	if err != nil {
		return nil, err
	}
	out := &models.FitbitConnect{}
	if err := decodeEnvelope(raw, out, "data"); err != nil {
		return nil, fmt.Errorf("failed to decode fitbit connect: %w", err)
	}
	return out, nil
}

func (c *Client) FitbitStatus(ctx context.Context, token string) (*models.FitbitStatus, error) {
	raw, err := c.do(ctx, http.MethodGet, "/fitbit/status", "fitbit.status", token, nil)
	if err != nil {
		return nil, err
	}
	out := &models.FitbitStatus{}
	if err := decodeEnvelope(raw, out, "data"); err != nil {
		return nil, fmt.Errorf("failed to decode fitbit status: %w", err)
	}
	return out, nil
}

func (c *Client) FitbitData(ctx context.Context, token string) (*models.FitbitData, error) {
	raw, err := c.do(ctx, http.MethodGet, "/fitbit/data", "fitbit.data", token, nil)
	if err != nil {
		return nil, err
	}
	out := &models.FitbitData{}
	if err := decodeEnvelope(raw, out, "data"); err != nil {
		return nil, fmt.Errorf("failed to decode fitbit data: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, endpoint, token string, body []byte) (raw []byte, err error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if c.observer == nil {
			return
		}
		if err != nil && outcome == "ok" {
			outcome = "error"
		}
		c.observer.ObserveRemoteCall(endpoint, outcome, time.Since(start))
	}()

	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = strconv.Itoa(resp.StatusCode)
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return raw, nil
}
