package errs

import (
	"errors"
	"fmt"
)

// Sentinel kinds wrapped with %w so callers can classify with errors.Is.
// Anything that is neither validation nor not-found is treated as a
// storage failure of the whole operation.
var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
