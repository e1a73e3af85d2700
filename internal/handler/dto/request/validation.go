package request

import (
	"fmt"
	"strings"

	"coachbook/internal/domain/slotkey"
	"coachbook/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errValidatorEngine = errs.New("gin binding engine is not go-playground/validator")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterValidations adds the custom rules the request DTOs rely on to gin's
// binding engine. Call once before serving.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errValidatorEngine
	}
	if err := v.RegisterValidation("nonblank", validateNonBlank); err != nil {
		return errs.Wrap(err, "failed to register 'nonblank' validator")
	}
	v.RegisterStructValidation(validateCalendar, CalendarFields{})
	return nil
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateCalendar rejects dates that do not exist, such as February 30.
// Field ranges are checked by the binding tags.
func validateCalendar(sl validator.StructLevel) {
	c, ok := sl.Current().Interface().(CalendarFields)
	if !ok || c.Hour == nil || c.Minute == nil {
		return
	}
	if err := c.ToCalendar().Validate(); err != nil {
		sl.ReportError(c.Day, "Day", "day", "calendar_date", "")
	}
}

// ValidationDetail lists the failing fields of a binding error, or nil when
// err did not come from the validator.
func ValidationDetail(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "nonblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "nefield":
		return fmt.Sprintf("must differ from %s", fe.Param())
	case "calendar_date":
		return "is not a day of the given month"
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}

// CalendarFields is embedded by requests that carry a calendar position.
type CalendarFields struct {
	Year   int  `json:"year" binding:"required,min=1,max=9999"`
	Month  int  `json:"month" binding:"required,min=1,max=12"`
	Day    int  `json:"day" binding:"required,min=1,max=31"`
	Hour   *int `json:"hour" binding:"required,min=0,max=23"`
	Minute *int `json:"minute" binding:"required,min=0,max=59"`
}

func (c CalendarFields) ToCalendar() slotkey.Calendar {
	cal := slotkey.Calendar{Year: c.Year, Month: c.Month, Day: c.Day}
	if c.Hour != nil {
		cal.Hour = *c.Hour
	}
	if c.Minute != nil {
		cal.Minute = *c.Minute
	}
	return cal
}
