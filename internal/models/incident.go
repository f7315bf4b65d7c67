package models

import (
	"time"
)

// IncidentStatus - статус инцидента в жизненном цикле pending -> in progress -> resolved
type IncidentStatus string

const (
	StatusPending    IncidentStatus = "pending"
	StatusInProgress IncidentStatus = "in progress"
	StatusResolved   IncidentStatus = "resolved"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s IncidentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// AssignmentStatus - статус назначения волонтера на инцидент
type AssignmentStatus string

const (
	AssignmentNone     AssignmentStatus = "unassigned"
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAssigned AssignmentStatus = "assigned"
)

type AnimalInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Severity    int    `json:"severity"`
}

type Location struct {
	Address string `json:"address"`
}

type ReporterInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type Volunteer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// VolunteerActivity хранит назначение волонтера. Volunteer заполняется
// только после вторичного запроса по VolunteerID.
type VolunteerActivity struct {
	Status      AssignmentStatus `json:"status,omitempty"`
	VolunteerID string           `json:"volunteerId,omitempty"`
	Volunteer   *Volunteer       `json:"volunteer,omitempty"`
}

type Incident struct {
	ID                string             `json:"id"`
	Status            IncidentStatus     `json:"status"`
	AnimalInfo        AnimalInfo         `json:"animalInfo"`
	Location          Location           `json:"location"`
	ReporterInfo      ReporterInfo       `json:"reporterInfo"`
	VolunteerActivity *VolunteerActivity `json:"volunteerActivity,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	if i.VolunteerActivity != nil {
		va := *i.VolunteerActivity
		if va.Volunteer != nil {
			v := *va.Volunteer
			va.Volunteer = &v
		}
		c.VolunteerActivity = &va
	}
	return &c
}

// AssignedVolunteerID возвращает идентификатор назначенного волонтера или пустую строку
func (i *Incident) AssignedVolunteerID() string {
	if i == nil || i.VolunteerActivity == nil {
		return ""
	}
	return i.VolunteerActivity.VolunteerID
}
