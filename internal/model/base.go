package model

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the canonical date-only layout used for log dates and
// upsert keys throughout the API.
const DateFormat = "2006-01-02"

// Base contains common fields for id-keyed records
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FormatDate renders t as a date-only string in the canonical layout.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Yesterday returns the date-only string for the day before t.
func Yesterday(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DateFormat)
}
