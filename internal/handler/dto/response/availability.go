package response

import (
	"time"

	"coachbook/internal/domain/availability"
	"coachbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	Key        string     `json:"uniquecheck"`
	CoachID    string     `json:"coachId"`
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	Day        int        `json:"day"`
	Hour       int        `json:"hour"`
	Minute     int        `json:"minute"`
	IsOpen     bool       `json:"isOpen"`
	Recurring  bool       `json:"recurring"`
	BookingKey *string    `json:"bookingKey,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAvailabilityViews(vs []*queries.AvailabilityView) ([]*AvailabilityResponse, error) {
	res := make([]*AvailabilityResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

// FromAvailability renders a slot that may no longer be stored, such as the
// result of a delete.
func FromAvailability(a *availability.Availability) *AvailabilityResponse {
	cal := a.Calendar()
	return &AvailabilityResponse{
		Key:        a.Key(),
		CoachID:    a.CoachID(),
		Year:       cal.Year,
		Month:      cal.Month,
		Day:        cal.Day,
		Hour:       cal.Hour,
		Minute:     cal.Minute,
		IsOpen:     a.IsOpen(),
		Recurring:  a.Recurring(),
		BookingKey: a.BookingKey(),
	}
}
