package appointment

import (
	"time"

	"github.com/urbanbarber/api/internal/httperr"
)

// Operating window: bookings start at 07:00 and the last slot begins
// before 22:00.
const (
	OpeningHour = 7
	ClosingHour = 22

	MaxNotesLen = 200
)

// ParseTimeOfDay validates an "HH:MM" time-of-day string.
func ParseTimeOfDay(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time")
	}
	return t, nil
}

// ValidateTimeOfDay enforces the operating window.
func ValidateTimeOfDay(value string) error {
	t, err := ParseTimeOfDay(value)
	if err != nil {
		return err
	}
	if t.Hour() < OpeningHour || t.Hour() >= ClosingHour {
		return httperr.ErrBusiness("outside_business_hours")
	}
	return nil
}

// ValidateDate rejects dates before the current calendar day in the
// shop's timezone.
func ValidateDate(date time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return httperr.ErrBusiness("date_in_past")
	}
	return nil
}

// ValidateNotes caps the free-text note length.
func ValidateNotes(notes string) error {
	if len([]rune(notes)) > MaxNotesLen {
		return httperr.ErrBusiness("notes_too_long")
	}
	return nil
}
