package usecase

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/yuanzh/recruit-portal/internal/pkg/logger"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	"github.com/yuanzh/recruit-portal/internal/utils"
	"github.com/yuanzh/recruit-portal/services/applications"
)

// RequestCode issues a fresh verification code for the given phone and hands
// it to the SMS gateway. The code is also returned so the transport layer
// can decide whether to reveal it (debug deployments only).
func (u *ApplicationUC) RequestCode(ctx context.Context, phone string) (string, error) {
	if !utils.IsValidPhone(phone) {
		return "", applications.ErrInvalidPhone
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	now := u.now()
	otp := &models.OTP{
		ID:        uuid.New().String(),
		Phone:     phone,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(applications.CodeTTL),
	}

	if err := u.repo.CreateOTP(ctx, otp); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}

	// Delivery is best effort: the record is already live and the applicant
	// can request a resend, so a gateway hiccup must not void the code.
	if err := u.smsGW.SendVerificationSMS(ctx, phone, code); err != nil {
		logger.Warn("Failed to dispatch verification SMS",
			logger.Err(err),
			logger.String("phone", phone))
	}

	logger.Info("Issued verification code",
		logger.String("phone", phone),
		logger.String("otp_id", otp.ID))

	return code, nil
}

// VerifyCode checks a submitted code against the live record for the phone.
// A match consumes the record; a wrong guess leaves it intact until expiry.
// All failure causes collapse to false at this boundary.
func (u *ApplicationUC) VerifyCode(ctx context.Context, phone, code string) (bool, error) {
	result, err := u.verifyCode(ctx, phone, code)
	if err != nil {
		return false, err
	}

	if result != models.OTPVerifyOK {
		logger.Debug("Verification code rejected",
			logger.String("phone", phone),
			logger.String("reason", result.String()))
	}

	return result == models.OTPVerifyOK, nil
}

// verifyCode distinguishes the failure causes for diagnostics. The clock is
// read once so the expiry comparison inside a call is consistent.
func (u *ApplicationUC) verifyCode(ctx context.Context, phone, code string) (models.OTPVerifyResult, error) {
	otp, err := u.repo.GetOTP(ctx, phone)
	if err != nil {
		return models.OTPVerifyNotFound, fmt.Errorf("failed to look up verification code: %w", err)
	}
	if otp == nil {
		return models.OTPVerifyNotFound, nil
	}

	if u.now().After(otp.ExpiresAt) {
		if err := u.repo.DeleteOTP(ctx, phone); err != nil {
			return models.OTPVerifyExpired, fmt.Errorf("failed to discard expired code: %w", err)
		}
		return models.OTPVerifyExpired, nil
	}

	if otp.Code != code {
		return models.OTPVerifyMismatch, nil
	}

	if err := u.repo.DeleteOTP(ctx, phone); err != nil {
		return models.OTPVerifyOK, fmt.Errorf("failed to consume verification code: %w", err)
	}

	return models.OTPVerifyOK, nil
}

// generateCode draws a uniformly random 6-digit code ("100000"-"999999").
func generateCode() (string, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
