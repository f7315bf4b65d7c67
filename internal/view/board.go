package view

import (
	"sync"
	"time"

	"github.com/shenikar/rescue_dashboard/internal/models"
)

// Phase - состояние отображения ресурса
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseLoaded  Phase = "loaded"
)

// Snapshot - неизменяемая копия состояния доски
type Snapshot struct {
	Phase     Phase
	Incidents []*models.Incident
	Err       string
	LoadedAt  time.Time
}

// Board хранит локальное состояние списка инцидентов одного пользователя
type Board struct {
	mu        sync.RWMutex
	phase     Phase
	incidents []*models.Incident
	err       string
	loadedAt  time.Time
}

func NewBoard() *Board {
	return &Board{phase: PhaseIdle}
}

// BeginLoad переводит доску в состояние загрузки, сохраняя прежние данные
func (b *Board) BeginLoad() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.phase = PhaseLoading
	b.err = ""
}

// Load заменяет содержимое доски загруженными инцидентами
func (b *Board) Load(incidents []*models.Incident) {
	copied := cloneAll(incidents)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.phase = PhaseLoaded
	b.incidents = copied
	b.err = ""
	b.loadedAt = time.Now().UTC()
}

// Fail фиксирует ошибку загрузки
func (b *Board) Fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.phase = PhaseError
	if err != nil {
		b.err = err.Error()
	}
}

// Patch заменяет инцидент с тем же ID. Возвращает false, если такого нет.
func (b *Board) Patch(incident *models.Incident) bool {
	if incident == nil {
		return false
	}
	copied := incident.Clone()

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.incidents {
		if existing.ID == copied.ID {
			b.incidents[i] = copied
			return true
		}
	}
	return false
}

// Find возвращает копию инцидента по ID
func (b *Board) Find(id string) (*models.Incident, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, existing := range b.incidents {
		if existing.ID == id {
			return existing.Clone(), true
		}
	}
	return nil, false
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		Phase:     b.phase,
		Incidents: cloneAll(b.incidents),
		Err:       b.err,
		LoadedAt:  b.loadedAt,
	}
}

func cloneAll(incidents []*models.Incident) []*models.Incident {
	out := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident == nil {
			continue
		}
		out = append(out, incident.Clone())
	}
	return out
}
