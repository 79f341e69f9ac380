package models

import (
	"time"
)

// Notification is one entry of the per-application notification ledger.
// Entries are immutable once written.
type Notification struct {
	ID            int64     `json:"id" db:"id"`
	ApplicationID int64     `json:"application_id" db:"application_id"`
	Type          string    `json:"type" db:"type"`
	Content       string    `json:"content" db:"content"`
	SentAt        time.Time `json:"sent_at" db:"sent_at"`
}

// SMSMessage is the payload published for the external SMS dispatcher.
type SMSMessage struct {
	Phone   string    `json:"phone"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}
