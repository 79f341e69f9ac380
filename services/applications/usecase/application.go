package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuanzh/recruit-portal/internal/pkg/logger"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	"github.com/yuanzh/recruit-portal/internal/utils"
	"github.com/yuanzh/recruit-portal/services/applications"
)

// SubmitApplication gates a public submission behind the identity validators
// and the phone-ownership proof, then persists it with status pending.
func (u *ApplicationUC) SubmitApplication(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, applications.ErrNameRequired
	}
	if !utils.IsValidPhone(req.Phone) {
		return nil, applications.ErrInvalidPhone
	}
	if req.SMSCode == "" {
		return nil, applications.ErrCodeRequired
	}

	ok, err := u.VerifyCode(ctx, req.Phone, req.SMSCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, applications.ErrCodeInvalid
	}

	if !utils.IsValidIDCard(req.IDNumber) {
		return nil, applications.ErrInvalidIDCard
	}

	app := &models.Application{
		Name:       name,
		Phone:      req.Phone,
		IDNumber:   req.IDNumber,
		Region:     strings.TrimSpace(req.Region),
		Education:  strings.TrimSpace(req.Education),
		Major:      strings.TrimSpace(req.Major),
		Experience: strings.TrimSpace(req.Experience),
		Note:       strings.TrimSpace(req.Note),
		Status:     models.StatusPending,
	}

	created, err := u.repo.CreateApplication(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	logger.Info("Application submitted",
		logger.Int64("application_id", created.ID),
		logger.String("phone", created.Phone))

	return created, nil
}

// LookupStatus is the self-service progress query. Requiring both the phone
// and the exact identity number doubles as the identity proof, so there is
// no account or session in front of it.
func (u *ApplicationUC) LookupStatus(ctx context.Context, phone, idNumber string) (*models.StatusLookupResult, error) {
	if !utils.IsValidPhone(phone) {
		return nil, applications.ErrInvalidPhone
	}
	if !utils.IsValidIDCard(idNumber) {
		return nil, applications.ErrInvalidIDCard
	}

	app, err := u.repo.FindApplicationByPhoneAndIDNumber(ctx, phone, idNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up application: %w", err)
	}
	if app == nil {
		return nil, applications.ErrApplicationNotFound
	}

	notifications, err := u.repo.ListNotificationsForApplication(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &models.StatusLookupResult{
		Application:   app,
		Notifications: notifications,
	}, nil
}

// ListApplications returns applications for the staff console, optionally
// narrowed by status and a free-text query.
func (u *ApplicationUC) ListApplications(ctx context.Context, filter models.ApplicationFilter) ([]*models.Application, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, applications.ErrInvalidStatus
	}

	apps, err := u.repo.ListApplications(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// GetApplication returns one application with its notification history.
func (u *ApplicationUC) GetApplication(ctx context.Context, id int64) (*models.StatusLookupResult, error) {
	app, err := u.repo.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, applications.ErrApplicationNotFound
	}

	notifications, err := u.repo.ListNotificationsForApplication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &models.StatusLookupResult{
		Application:   app,
		Notifications: notifications,
	}, nil
}

// UpdateStatus advances an application through the review pipeline. Any
// status may follow any other (the pipeline intentionally has no transition
// guard). A bare status change records nothing in the ledger; a non-empty
// message is appended typed with the new status and optionally dispatched
// by SMS.
func (u *ApplicationUC) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.Application, error) {
	if !req.Status.IsValid() {
		return nil, applications.ErrInvalidStatus
	}

	app, err := u.repo.UpdateApplicationStatus(ctx, id, req.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if app == nil {
		return nil, applications.ErrApplicationNotFound
	}

	message := strings.TrimSpace(req.Message)
	if message != "" {
		if _, err := u.repo.AddNotification(ctx, app.ID, string(req.Status), message); err != nil {
			return nil, fmt.Errorf("failed to record notification: %w", err)
		}

		if req.SendSMS {
			// Best effort: the ledger entry is the durable record.
			if err := u.smsGW.SendNotificationSMS(ctx, app.Phone, message); err != nil {
				logger.Warn("Failed to dispatch notification SMS",
					logger.Err(err),
					logger.Int64("application_id", app.ID))
			}
		}
	}

	logger.Info("Application status updated",
		logger.Int64("application_id", app.ID),
		logger.String("status", string(req.Status)),
		logger.Bool("notified", message != ""))

	return app, nil
}

// GetStats returns the dashboard counters.
func (u *ApplicationUC) GetStats(ctx context.Context) (*models.Stats, error) {
	stats, err := u.repo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
