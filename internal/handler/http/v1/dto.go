package v1

import (
	"time"

	"github.com/google/uuid"
)

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending 'in progress' resolved"`
}

// SetTokenRequest DTO для сохранения токена сессии
// @Description DTO для сохранения токена сессии
type SetTokenRequest struct {
	Token string `json:"token" validate:"required,min=8"`
}

// StatusChangeResponse DTO для записи журнала смены статусов
// @Description DTO для записи журнала смены статусов
type StatusChangeResponse struct {
	ID         uuid.UUID `json:"id"`
	IncidentID string    `json:"incident_id"`
	Subject    string    `json:"subject,omitempty"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	ChangedAt  time.Time `json:"changed_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// MediaResponse DTO для ответа с адресом загруженной фотографии
// @Description DTO для ответа с адресом загруженной фотографии
type MediaResponse struct {
	URL string `json:"url"`
}

// MeResponse DTO для ответа с субъектом токена
// @Description DTO для ответа с субъектом токена
type MeResponse struct {
	Subject       string `json:"subject"`
	Authenticated bool   `json:"authenticated"`
}
