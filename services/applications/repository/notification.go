package repository

import (
	"context"
	"fmt"

	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

// AddNotification appends an entry to the notification ledger. The
// application id is recorded as given; the ledger does not verify it against
// the applications table.
func (r *ApplicationRepo) AddNotification(ctx context.Context, applicationID int64, notifType, content string) (*models.Notification, error) {
	notification := &models.Notification{
		ApplicationID: applicationID,
		Type:          notifType,
		Content:       content,
		SentAt:        r.now(),
	}

	query := `
		INSERT INTO notifications (application_id, type, content, sent_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		notification.ApplicationID,
		notification.Type,
		notification.Content,
		notification.SentAt,
	).Scan(&notification.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to add notification: %w", err)
	}

	return notification, nil
}

// ListNotificationsForApplication returns the ledger entries for one
// application, most recent first.
func (r *ApplicationRepo) ListNotificationsForApplication(ctx context.Context, applicationID int64) ([]*models.Notification, error) {
	query := `
		SELECT id, application_id, type, content, sent_at
		FROM notifications
		WHERE application_id = $1
		ORDER BY sent_at DESC, id DESC
	`

	notifications := []*models.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, applicationID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}
