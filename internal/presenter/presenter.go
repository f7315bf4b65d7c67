// Package presenter превращает состояние доски в готовые к отображению модели.
// Функции пакета чистые: без ввода-вывода и без бизнес-логики.
package presenter

import (
	"time"

	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/view"
)

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

const (
	NoVolunteerLabel    = "No Volunteer Assigned"
	AssignedPrefixLabel = "Assigned "
	UnknownStatusLabel  = "Unknown"
)

// SeverityBucket раскладывает оценку 0-10 по корзинам: <4 Low, 4-6 Medium, >=7 High
func SeverityBucket(score int) Severity {
	switch {
	case score >= 7:
		return SeverityHigh
	case score >= 4:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// VolunteerLabel возвращает подпись волонтера для строки инцидента
func VolunteerLabel(incident *models.Incident) string {
	if incident == nil || incident.VolunteerActivity == nil {
		return NoVolunteerLabel
	}
	activity := incident.VolunteerActivity
	if activity.Volunteer != nil && activity.Volunteer.Name != "" {
		return activity.Volunteer.Name
	}
	if activity.VolunteerID != "" || activity.Status == models.AssignmentAssigned || activity.Status == models.AssignmentPending {
		return AssignedPrefixLabel
	}
	return NoVolunteerLabel
}

func StatusLabel(status models.IncidentStatus) string {
	switch status {
	case models.StatusPending:
		return "Pending"
	case models.StatusInProgress:
		return "In Progress"
	case models.StatusResolved:
		return "Resolved"
	}
	return UnknownStatusLabel
}

type IncidentRow struct {
	ID             string                `json:"id"`
	Status         models.IncidentStatus `json:"status"`
	StatusLabel    string                `json:"status_label"`
	AnimalType     string                `json:"animal_type"`
	Description    string                `json:"description"`
	PhotoURL       string                `json:"photo_url,omitempty"`
	Severity       int                   `json:"severity"`
	SeverityBucket Severity              `json:"severity_bucket"`
	Address        string                `json:"address"`
	ReporterName   string                `json:"reporter_name"`
	ReporterPhone  string                `json:"reporter_contact"`
	VolunteerLabel string                `json:"volunteer"`
	CreatedAt      time.Time             `json:"created_at"`
}

type BoardView struct {
	State     view.Phase    `json:"state"`
	Error     string        `json:"error,omitempty"`
	Incidents []IncidentRow `json:"incidents"`
	LoadedAt  *time.Time    `json:"loaded_at,omitempty"`
}

func Row(incident *models.Incident) IncidentRow {
	return IncidentRow{
		ID:             incident.ID,
		Status:         incident.Status,
		StatusLabel:    StatusLabel(incident.Status),
		AnimalType:     incident.AnimalInfo.Type,
		Description:    incident.AnimalInfo.Description,
		PhotoURL:       incident.AnimalInfo.PhotoURL,
		Severity:       incident.AnimalInfo.Severity,
		SeverityBucket: SeverityBucket(incident.AnimalInfo.Severity),
		Address:        incident.Location.Address,
		ReporterName:   incident.ReporterInfo.Name,
		ReporterPhone:  incident.ReporterInfo.Contact,
		VolunteerLabel: VolunteerLabel(incident),
		CreatedAt:      incident.CreatedAt,
	}
}

// Board строит представление доски. Строки показываются только в состоянии loaded.
func Board(snapshot view.Snapshot) BoardView {
	out := BoardView{
		State:     snapshot.Phase,
		Incidents: make([]IncidentRow, 0),
	}
	switch snapshot.Phase {
	case view.PhaseError:
		out.Error = snapshot.Err
	case view.PhaseLoaded:
		for _, incident := range snapshot.Incidents {
			out.Incidents = append(out.Incidents, Row(incident))
		}
		if !snapshot.LoadedAt.IsZero() {
			loadedAt := snapshot.LoadedAt
			out.LoadedAt = &loadedAt
		}
	}
	return out
}
