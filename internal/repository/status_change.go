package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/service"
)

type StatusChangeRepository struct {
	db *pgxpool.Pool
}

func NewStatusChangeRepository(db *pgxpool.Pool) service.StatusChangeRepository {
	return &StatusChangeRepository{
		db: db,
	}
}

// Record сохраняет запись о смене статуса, заполняя ID и время
func (r *StatusChangeRepository) Record(ctx context.Context, change *models.StatusChange) error {
	query := `
		INSERT INTO status_changes (incident_id, subject, from_status, to_status)
		VALUES ($1, $2, $3, $4) RETURNING id, changed_at;
	`
	err := r.db.QueryRow(ctx, query,
		change.IncidentID,
		change.Subject,
		string(change.FromStatus),
		string(change.ToStatus),
	).Scan(&change.ID, &change.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return nil
}

// ListByIncident возвращает последние смены статуса инцидента, новые первыми
func (r *StatusChangeRepository) ListByIncident(ctx context.Context, incidentID string, limit int) ([]*models.StatusChange, error) {
	query := `
		SELECT
			id,
			incident_id,
			subject,
			from_status,
			to_status,
			changed_at
		FROM status_changes
		WHERE incident_id = $1
		ORDER BY changed_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, incidentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list status changes: %w", err)
	}
	defer rows.Close()

	changes := make([]*models.StatusChange, 0)
	for rows.Next() {
		change := &models.StatusChange{}
		var from, to string
		err := rows.Scan(
			&change.ID,
			&change.IncidentID,
			&change.Subject,
			&from,
			&to,
			&change.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status change row: %w", err)
		}
		change.FromStatus = models.IncidentStatus(from)
		change.ToStatus = models.IncidentStatus(to)
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return changes, nil
}
