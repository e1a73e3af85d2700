package queries

import "time"

// AvailabilityView represents read-optimized slot data
type AvailabilityView struct {
	Key        string    `json:"uniquecheck"`
	CoachID    string    `json:"coach_id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Day        int       `json:"day"`
	Hour       int       `json:"hour"`
	Minute     int       `json:"minute"`
	IsOpen     bool      `json:"is_open"`
	Recurring  bool      `json:"recurring"`
	BookingKey *string   `json:"booking_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingView represents read-optimized booking data with its linked slots
type BookingView struct {
	Key                string    `json:"uniquecheck"`
	CoachID            string    `json:"coach_id"`
	SeekerID           string    `json:"seeker_id"`
	Year               int       `json:"year"`
	Month              int       `json:"month"`
	Day                int       `json:"day"`
	Hour               int       `json:"hour"`
	Minute             int       `json:"minute"`
	SlotKeys           []string  `json:"availability"`
	InterviewGoals     *string   `json:"interview_goals,omitempty"`
	InterviewQuestions *string   `json:"interview_questions,omitempty"`
	ResumeURL          *string   `json:"resume_url,omitempty"`
	PriceCents         int32     `json:"price_cents"`
	Pending            bool      `json:"pending"`
	Confirmed          bool      `json:"confirmed"`
	CreatedAt          time.Time `json:"created_at"`
}
