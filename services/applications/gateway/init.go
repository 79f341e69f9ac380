package gateway

import (
	"github.com/yuanzh/recruit-portal/internal/pkg/nsq"
	"github.com/yuanzh/recruit-portal/internal/pkg/retry"
)

// SMSGW publishes SMS dispatch events for the external delivery gateway.
type SMSGW struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewSMSGW creates a new SMS gateway instance
func NewSMSGW(producer *nsq.Producer) *SMSGW {
	return &SMSGW{
		producer: producer,
		retrier:  retry.New(retry.DefaultConfig()),
	}
}
