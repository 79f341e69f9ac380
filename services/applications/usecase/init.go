package usecase

import (
	"time"

	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	"github.com/yuanzh/recruit-portal/services/applications"
)

// ApplicationUC implements the applicant-intake business flows on top of the
// repository and the SMS gateway.
type ApplicationUC struct {
	repo  applications.ApplicationRepo
	smsGW applications.SMSGW
	cfg   *models.Config

	// now is read once per operation so a single call never sees two clocks.
	now func() time.Time
}

// NewApplicationUC creates a new application usecase instance
func NewApplicationUC(
	repo applications.ApplicationRepo,
	smsGW applications.SMSGW,
	cfg *models.Config,
) *ApplicationUC {
	return &ApplicationUC{
		repo:  repo,
		smsGW: smsGW,
		cfg:   cfg,
		now:   time.Now,
	}
}
