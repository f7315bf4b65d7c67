package v1

import (
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/presenter"
)

// ModelToIncidentRow преобразует доменную модель в строку доски
func ModelToIncidentRow(model *models.Incident) presenter.IncidentRow {
	return presenter.Row(model)
}

// ModelToStatusChangeResponse преобразует запись журнала в DTO
func ModelToStatusChangeResponse(model *models.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		ID:         model.ID,
		IncidentID: model.IncidentID,
		Subject:    model.Subject,
		FromStatus: string(model.FromStatus),
		ToStatus:   string(model.ToStatus),
		ChangedAt:  model.ChangedAt,
	}
}

// ModelsToStatusChangeResponses преобразует слайс записей журнала в слайс DTO
func ModelsToStatusChangeResponses(changes []*models.StatusChange) []StatusChangeResponse {
	responses := make([]StatusChangeResponse, 0, len(changes))
	for _, change := range changes {
		responses = append(responses, ModelToStatusChangeResponse(change))
	}
	return responses
}

// ModelToStatsResponse преобразует статистику в DTO
func ModelToStatsResponse(model *models.Stats) StatsResponse {
	return StatsResponse{
		Total:    model.Total,
		Critical: model.Critical,
		Pending:  model.Pending,
		Resolved: model.Resolved,
	}
}
