package shared

import (
	"encoding/json"

	"github.com/google/uuid"
)

type PostSnapshot struct {
	ID      uuid.UUID
	CoachID string
}

const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

// OutboxEvent is written in the same transaction as the change it announces.
// Key is the partitioning key on the broker side.
type OutboxEvent struct {
	Kind    string
	Key     string
	Payload json.RawMessage
}

type BookingEventPayload struct {
	BookingKey string    `json:"bookingKey"`
	CoachID    string    `json:"coachId"`
	SeekerID   string    `json:"seekerId"`
	SlotKeys   [2]string `json:"slotKeys"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Day        int       `json:"day"`
	Hour       int       `json:"hour"`
	Minute     int       `json:"minute"`
	PriceCents int32     `json:"priceCents"`
}
