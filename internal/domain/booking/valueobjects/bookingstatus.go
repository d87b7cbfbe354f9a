package valueobjects

import "fmt"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Numeric aliases kept for API compatibility with existing clients.
const (
	StatusIDPending   = 1
	StatusIDConfirmed = 2
	StatusIDCompleted = 3
	StatusIDCanceled  = 255
)

func NewBookingStatus(status string) (BookingStatus, error) {
	s := BookingStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", status)
	}
	return s, nil
}

func NewBookingStatusFromID(id int) (BookingStatus, error) {
	switch id {
	case StatusIDPending:
		return BookingStatusPending, nil
	case StatusIDConfirmed:
		return BookingStatusConfirmed, nil
	case StatusIDCompleted:
		return BookingStatusCompleted, nil
	case StatusIDCanceled:
		return BookingStatusCanceled, nil
	default:
		return "", fmt.Errorf("invalid booking status ID: %d", id)
	}
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// StatusID returns the numeric code stored and served alongside the
// textual status. The two are always written together.
func (s BookingStatus) StatusID() int {
	switch s {
	case BookingStatusConfirmed:
		return StatusIDConfirmed
	case BookingStatusCompleted:
		return StatusIDCompleted
	case BookingStatusCanceled:
		return StatusIDCanceled
	default:
		return StatusIDPending
	}
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCanceled || s == BookingStatusCompleted
}

func (s BookingStatus) String() string {
	return string(s)
}
