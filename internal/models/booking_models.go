package models

import "time"

// BookingStatus defines the type for booking statuses
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

// IsValidBookingStatus checks if the provided status string is a valid BookingStatus.
func IsValidBookingStatus(status string) bool {
	switch BookingStatus(status) {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected:
		return true
	default:
		return false
	}
}

// bookingTransitions lists the status changes an admin may apply.
// A booking never goes back to pending once it has been decided on,
// but accepted and rejected may be flipped while the table is still free.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusRejected},
	BookingStatusAccepted: {BookingStatusRejected},
	BookingStatusRejected: {BookingStatusAccepted},
}

// CanTransitionBooking reports whether a booking may move from one status to another.
func CanTransitionBooking(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Booking represents a table reservation submitted from the public site
// or created by an admin from the dashboard.
type Booking struct {
	BookingID       int64         `json:"booking_id"`
	Name            string        `json:"name" binding:"required"`
	Email           string        `json:"email" binding:"required,email"`
	Phone           string        `json:"phone" binding:"required"`
	NumberOfPeople  int           `json:"number_of_people" binding:"required,min=1"`
	DateToCome      string        `json:"date_to_come" binding:"required"` // YYYY-MM-DD
	TimeToCome      string        `json:"time_to_come" binding:"required"` // HH:MM
	TableType       string        `json:"table_type" binding:"required"`
	Floor           string        `json:"floor" binding:"required,oneof=Indoor Outdoor"`
	Description     string        `json:"description"`
	Status          BookingStatus `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// IsNew reports whether the booking is still pending and arrived today.
// The dashboard highlights these rows.
func (b Booking) IsNew(now time.Time) bool {
	y1, m1, d1 := b.CreatedAt.Date()
	y2, m2, d2 := now.Date()
	return b.Status == BookingStatusPending && y1 == y2 && m1 == m2 && d1 == d2
}
