package applications

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/yuanzh/recruit-portal/services/applications SMSGW

// SMSGW dispatches SMS messages to the external delivery gateway. This core
// only decides when and what to send; transport is someone else's problem.
type SMSGW interface {
	SendVerificationSMS(ctx context.Context, phone, code string) error
	SendNotificationSMS(ctx context.Context, phone, content string) error
}
