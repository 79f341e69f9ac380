package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/yuanzh/recruit-portal/internal/pkg/constants"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

// CreateOTP stores a verification code record in Redis keyed by phone, with
// a TTL matching its expiry. An existing record for the same phone is
// silently replaced.
func (r *ApplicationRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	key := fmt.Sprintf(constants.KeyApplicantOTP, otp.Phone)

	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	ttl := otp.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("OTP already expired at creation")
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetOTP retrieves the live verification record for a phone, nil when absent
func (r *ApplicationRepo) GetOTP(ctx context.Context, phone string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyApplicantOTP, phone)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP removes the verification record for a phone
func (r *ApplicationRepo) DeleteOTP(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyApplicantOTP, phone)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}

	return nil
}
