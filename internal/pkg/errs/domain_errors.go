package errs

// Error classes shared by every layer. Specific sentinels belong to one of
// these so the handler can map a status without knowing every sentinel.
var (
	ErrNotFound       = New("not found")
	ErrDuplicateKey   = New("duplicate key")
	ErrConflict       = New("conflict")
	ErrForbidden      = New("forbidden")
	ErrValidation     = New("validation failed")
	ErrTransientStore = New("transient store error")
)

type classedError struct {
	msg   string
	class error
}

func (e *classedError) Error() string { return e.msg }

func (e *classedError) Is(target error) bool { return target == e.class }

// Class declares a sentinel that is its own identity and also matches class
// under errors.Is. Two sentinels of one class never match each other.
func Class(msg string, class error) error {
	return &classedError{msg: msg, class: class}
}
