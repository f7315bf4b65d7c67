package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationError   NotificationKind = "error"
	NotificationSuccess NotificationKind = "success"
)

// Notification - кратковременное уведомление для пользователя дашборда.
// Recipient - ключ токена получателя (auth.Key), по нему уведомление доставляется.
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	Recipient  string           `json:"recipient,omitempty"`
	Kind       NotificationKind `json:"kind"`
	Subject    string           `json:"subject,omitempty"`
	IncidentID string           `json:"incident_id,omitempty"`
	Message    string           `json:"message"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewNotification создает уведомление с новым ID и текущим временем
func NewNotification(kind NotificationKind, subject, incidentID, message string) Notification {
	return Notification{
		ID:         uuid.New(),
		Kind:       kind,
		Subject:    subject,
		IncidentID: incidentID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
}
