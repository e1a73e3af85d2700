package response

import (
	"time"

	dombooking "coachbook/internal/domain/booking"
	"coachbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	Key                string    `json:"uniquecheck"`
	CoachID            string    `json:"coachId"`
	SeekerID           string    `json:"seekerId"`
	Year               int       `json:"year"`
	Month              int       `json:"month"`
	Day                int       `json:"day"`
	Hour               int       `json:"hour"`
	Minute             int       `json:"minute"`
	SlotKeys           []string  `json:"availability"`
	InterviewGoals     *string   `json:"interviewGoals,omitempty"`
	InterviewQuestions *string   `json:"interviewQuestions,omitempty"`
	ResumeURL          *string   `json:"resumeUrl,omitempty"`
	PriceCents         int32     `json:"priceCents"`
	Pending            bool      `json:"pending"`
	Confirmed          bool      `json:"confirmed"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

// FromBooking renders the snapshot returned by a delete.
func FromBooking(b *dombooking.Booking) *BookingResponse {
	cal := b.Calendar()
	keys := b.SlotKeys()
	return &BookingResponse{
		Key:                b.Key(),
		CoachID:            b.CoachID(),
		SeekerID:           b.SeekerID(),
		Year:               cal.Year,
		Month:              cal.Month,
		Day:                cal.Day,
		Hour:               cal.Hour,
		Minute:             cal.Minute,
		SlotKeys:           keys[:],
		InterviewGoals:     b.InterviewGoals(),
		InterviewQuestions: b.InterviewQuestions(),
		ResumeURL:          b.ResumeURL(),
		PriceCents:         b.PriceCents(),
		Pending:            b.Pending(),
		Confirmed:          b.Confirmed(),
		CreatedAt:          b.CreatedAt(),
	}
}
