package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange - запись аудита о подтвержденной смене статуса инцидента
type StatusChange struct {
	ID         uuid.UUID      `json:"id"`
	IncidentID string         `json:"incident_id"`
	Subject    string         `json:"subject"`
	FromStatus IncidentStatus `json:"from_status"`
	ToStatus   IncidentStatus `json:"to_status"`
	ChangedAt  time.Time      `json:"changed_at"`
}
