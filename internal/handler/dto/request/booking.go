package request

import (
	dombooking "coachbook/internal/domain/booking"
	"coachbook/internal/usecase/commands"
)

// CreateBookingRequest books two slots of one coach. The calendar fields
// describe the booked session and feed the booking key.
type CreateBookingRequest struct {
	CalendarFields
	CoachID            string  `json:"coachId" binding:"required,nonblank"`
	AvailabilityA      string  `json:"availabilityA" binding:"required,nonblank,nefield=AvailabilityB"`
	AvailabilityB      string  `json:"availabilityB" binding:"required,nonblank"`
	InterviewGoals     *string `json:"interviewGoals" binding:"omitempty,max=2000"`
	InterviewQuestions *string `json:"interviewQuestions" binding:"omitempty,max=2000"`
	ResumeURL          *string `json:"resumeUrl" binding:"omitempty,max=2048"`
	PriceCents         *int32  `json:"priceCents" binding:"required,min=0"`
	Pending            *bool   `json:"pending"`
	Confirmed          *bool   `json:"confirmed"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	var price int32
	if r.PriceCents != nil {
		price = *r.PriceCents
	}
	return commands.CreateBookingRequest{
		CoachID:       r.CoachID,
		Calendar:      r.ToCalendar(),
		AvailabilityA: r.AvailabilityA,
		AvailabilityB: r.AvailabilityB,
		Negotiation: dombooking.Negotiation{
			InterviewGoals:     r.InterviewGoals,
			InterviewQuestions: r.InterviewQuestions,
			ResumeURL:          r.ResumeURL,
			PriceCents:         price,
			Pending:            r.Pending,
			Confirmed:          r.Confirmed,
		},
	}
}
