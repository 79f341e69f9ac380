package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/yuanzh/recruit-portal/internal/pkg/constants"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

// SendVerificationSMS publishes the verification-code SMS for delivery.
func (g *SMSGW) SendVerificationSMS(ctx context.Context, phone, code string) error {
	msg := models.SMSMessage{
		Phone:   phone,
		Content: fmt.Sprintf("您的报名验证码是 %s，5分钟内有效。", code),
		SentAt:  time.Now(),
	}

	return g.publish(ctx, constants.TopicSMSVerification, msg)
}

// SendNotificationSMS publishes a staff notification SMS for delivery.
func (g *SMSGW) SendNotificationSMS(ctx context.Context, phone, content string) error {
	msg := models.SMSMessage{
		Phone:   phone,
		Content: content,
		SentAt:  time.Now(),
	}

	return g.publish(ctx, constants.TopicSMSNotification, msg)
}

// publish sends with retry; NSQ daemon hiccups are the common failure here.
func (g *SMSGW) publish(ctx context.Context, topic string, msg models.SMSMessage) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(topic, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to publish SMS event to %s: %w", topic, err)
	}

	return nil
}
