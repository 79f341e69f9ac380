package models

import (
	"strings"
	"time"
)

// Status is the review stage of an application. The set is closed; any
// value outside it is rejected at the boundary.
type Status string

const (
	StatusPending   Status = "pending"
	StatusWritten   Status = "written"
	StatusInterview Status = "interview"
	StatusPass      Status = "pass"
	StatusReject    Status = "reject"
)

// Statuses lists every valid status in pipeline order.
var Statuses = []Status{StatusPending, StatusWritten, StatusInterview, StatusPass, StatusReject}

// IsValid reports whether s is one of the five known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWritten, StatusInterview, StatusPass, StatusReject:
		return true
	}
	return false
}

// Application represents a recruitment application submitted by a citizen
type Application struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Phone      string     `json:"phone" db:"phone"`
	IDNumber   string     `json:"id_number" db:"id_number"`
	Region     string     `json:"region" db:"region"`
	Education  string     `json:"education" db:"education"`
	Major      string     `json:"major" db:"major"`
	Experience string     `json:"experience" db:"experience"`
	Note       string     `json:"note" db:"note"`
	Status     Status     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Normalize applies the storage invariants before persisting: the identity
// number is kept uppercase and an empty status defaults to pending.
func (a *Application) Normalize() {
	a.IDNumber = strings.ToUpper(a.IDNumber)
	if a.Status == "" {
		a.Status = StatusPending
	}
}

// ApplicationFilter narrows a listing. Zero values mean "no constraint".
type ApplicationFilter struct {
	Status Status
	Query  string
}

// Stats holds the total and per-status application counts. Statuses with no
// applications are reported as zero.
type Stats struct {
	Total     int `json:"total" db:"total"`
	Pending   int `json:"pending" db:"pending"`
	Written   int `json:"written" db:"written"`
	Interview int `json:"interview" db:"interview"`
	Pass      int `json:"pass" db:"pass"`
	Reject    int `json:"reject" db:"reject"`
}

// SubmitApplicationRequest is the public application submission payload.
type SubmitApplicationRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	SMSCode    string `json:"sms_code"`
	IDNumber   string `json:"id_number"`
	Region     string `json:"region"`
	Education  string `json:"education"`
	Major      string `json:"major"`
	Experience string `json:"experience"`
	Note       string `json:"note"`
}

// StatusLookupRequest is the self-service status query payload. Knowing both
// the phone and the exact identity number doubles as the identity proof.
type StatusLookupRequest struct {
	Phone    string `json:"phone"`
	IDNumber string `json:"id_number"`
}

// StatusLookupResult pairs an application with its notification history.
type StatusLookupResult struct {
	Application   *Application    `json:"application"`
	Notifications []*Notification `json:"notifications"`
}

// UpdateStatusRequest is the staff payload for advancing an application.
type UpdateStatusRequest struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	SendSMS bool   `json:"send_sms"`
}
