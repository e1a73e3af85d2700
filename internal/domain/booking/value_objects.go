package booking

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"coachbook/internal/pkg/errs"
)

const MaxNoteLength = 2000

var (
	ErrNoteTooLong      = errs.Class("interview note exceeds maximum length", errs.ErrValidation)
	ErrInvalidResumeURL = errs.Class("resume url must be an absolute http(s) url", errs.ErrValidation)
	ErrNegativePrice    = errs.Class("price cannot be negative", errs.ErrValidation)
)

// Negotiation carries the free-form terms a seeker attaches to a booking.
type Negotiation struct {
	InterviewGoals     *string
	InterviewQuestions *string
	ResumeURL          *string
	PriceCents         int32
	Pending            *bool
	Confirmed          *bool
}

func (n Negotiation) normalize() (terms, error) {
	goals, err := optionalNote(n.InterviewGoals)
	if err != nil {
		return terms{}, err
	}
	questions, err := optionalNote(n.InterviewQuestions)
	if err != nil {
		return terms{}, err
	}
	resume, err := optionalResumeURL(n.ResumeURL)
	if err != nil {
		return terms{}, err
	}
	if n.PriceCents < 0 {
		return terms{}, ErrNegativePrice
	}

	t := terms{
		interviewGoals:     goals,
		interviewQuestions: questions,
		resumeURL:          resume,
		priceCents:         n.PriceCents,
		pending:            true,
	}
	if n.Pending != nil {
		t.pending = *n.Pending
	}
	if n.Confirmed != nil {
		t.confirmed = *n.Confirmed
	}
	return t, nil
}

type terms struct {
	interviewGoals     *string
	interviewQuestions *string
	resumeURL          *string
	priceCents         int32
	pending            bool
	confirmed          bool
}

func optionalNote(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}
	return &t, nil
}

func optionalResumeURL(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	u, err := url.ParseRequestURI(t)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidResumeURL
	}
	return &t, nil
}
