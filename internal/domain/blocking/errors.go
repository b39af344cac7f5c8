package blocking

import "fmt"

// ValidationError marks input the caller can correct. Handlers map it to
// 400; any other failure out of this package is a server-side error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, a ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, a...)}
}
