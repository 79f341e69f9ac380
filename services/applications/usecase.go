package applications

import (
	"context"
	"errors"
	"time"

	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/yuanzh/recruit-portal/services/applications ApplicationUC

// CodeTTL is how long an issued verification code stays valid.
const CodeTTL = 5 * time.Minute

// Sentinel errors returned by the usecase layer. The HTTP layer maps them to
// status codes; everything else is an internal failure.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrCodeRequired        = errors.New("verification code is required")
	ErrCodeInvalid         = errors.New("verification code is invalid or expired")
	ErrInvalidIDCard       = errors.New("invalid identity number")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrApplicationNotFound = errors.New("application not found")
)

// ApplicationUC represents the applicant-intake usecase interface
type ApplicationUC interface {
	// handle verification codes
	RequestCode(ctx context.Context, phone string) (string, error)
	VerifyCode(ctx context.Context, phone, code string) (bool, error)

	// applicant-facing operations
	SubmitApplication(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error)
	LookupStatus(ctx context.Context, phone, idNumber string) (*models.StatusLookupResult, error)

	// staff operations
	ListApplications(ctx context.Context, filter models.ApplicationFilter) ([]*models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.StatusLookupResult, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.Application, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}
