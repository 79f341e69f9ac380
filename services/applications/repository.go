package applications

import (
	"context"

	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/yuanzh/recruit-portal/services/applications ApplicationRepo

// ApplicationRepo represents the persistence contract for applications,
// their notification ledger and the verification-code store. Absent records
// are returned as nil without an error.
type ApplicationRepo interface {
	CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error)
	ListApplications(ctx context.Context, filter models.ApplicationFilter) ([]*models.Application, error)
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	FindApplicationByPhoneAndIDNumber(ctx context.Context, phone, idNumber string) (*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status models.Status) (*models.Application, error)

	AddNotification(ctx context.Context, applicationID int64, notifType, content string) (*models.Notification, error)
	ListNotificationsForApplication(ctx context.Context, applicationID int64) ([]*models.Notification, error)

	GetStats(ctx context.Context) (*models.Stats, error)

	// handle OTP records
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, phone string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, phone string) error
}
