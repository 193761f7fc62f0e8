package models

import "time"

// EventAttendee represents a single attendance record created when a guest
// is invited to an event. Check-in flips its status by hash.
type EventAttendee struct {
	// EventAttendeeHash is the opaque hash encoded into the attendee's
	// QR code. It is the only lookup key used at check-in.
	EventAttendeeHash string `json:"eventAttendeeHash"`

	// DateTimeAttended is set the moment the attendee checks in.
	DateTimeAttended *time.Time `json:"dateTimeAttended,omitempty"`

	// Status is the attendance state ("attended" after check-in).
	Status string `json:"status"`
}

// TableName returns the name of the database table
// associated with the EventAttendee model.
func (a EventAttendee) TableName() string {
	return "event_attendees"
}
