package booking

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type SlotRef struct {
	StartTime string
	EndTime   string
}

// Booking is a reservation of one or more slots on a turf.
type Booking struct {
	ID          string
	UserID      string
	TurfID      string
	BookingDate time.Time
	Slots       []SlotRef
	TotalAmount float64
	Status      Status
	CreatedAt   time.Time
}

func (b Booking) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("booking id is required")
	}
	if b.UserID == "" {
		return fmt.Errorf("booking user id is required")
	}
	if b.TurfID == "" {
		return fmt.Errorf("booking turf id is required")
	}
	if len(b.Slots) == 0 {
		return fmt.Errorf("booking must contain at least one slot")
	}
	switch b.Status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
	default:
		return fmt.Errorf("invalid booking status: %s", b.Status)
	}

	return nil
}
