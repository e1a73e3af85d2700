package request

import "coachbook/internal/usecase/commands"

type CreateAvailabilityRequest struct {
	CalendarFields
	Recurring bool `json:"recurring"`
}

func (r CreateAvailabilityRequest) ToCommand() commands.CreateAvailabilityRequest {
	return commands.CreateAvailabilityRequest{
		Calendar:  r.ToCalendar(),
		Recurring: r.Recurring,
	}
}
