package models

import (
	"time"
)

// OTP represents a one-time code proving control of a phone number.
// At most one live record exists per phone; issuing a new code replaces it.
type OTP struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPVerifyResult distinguishes verification outcomes internally. The
// external contract collapses everything but OTPVerifyOK to a plain false.
type OTPVerifyResult int

const (
	OTPVerifyOK OTPVerifyResult = iota
	OTPVerifyNotFound
	OTPVerifyExpired
	OTPVerifyMismatch
)

func (r OTPVerifyResult) String() string {
	switch r {
	case OTPVerifyOK:
		return "ok"
	case OTPVerifyNotFound:
		return "not_found"
	case OTPVerifyExpired:
		return "expired"
	case OTPVerifyMismatch:
		return "mismatch"
	}
	return "unknown"
}

// RequestCodeRequest is the payload for requesting an SMS verification code.
type RequestCodeRequest struct {
	Phone string `json:"phone"`
}
