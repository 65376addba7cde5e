package errs

import (
	"errors"
	"fmt"
	"time"
)

var ErrSeatUnavailable = errors.New("seat is already booked")
var ErrSelectionLimit = errors.New("seat selection limit reached")
var ErrEmptySelection = errors.New("no seats selected")
var ErrNotFound = errors.New("not found")
var ErrDuplicateAccount = errors.New("email is already registered")
var ErrNoAccount = errors.New("no account found")
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports malformed user input (same-city route,
// short-haul air request, bad registration fields).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// LockedError is returned while an email is under a temporary login lock.
type LockedError struct {
	RetryAfter time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account temporarily locked, try again in about %d minute(s)", e.RetryAfterMinutes())
}

// RetryAfterMinutes reports the remaining lock time, rounded up.
func (e *LockedError) RetryAfterMinutes() int {
	return int((e.RetryAfter + time.Minute - 1) / time.Minute)
}

// CredentialsError is returned on a failed login below the lockout
// threshold and carries the number of attempts left before the lock.
type CredentialsError struct {
	AttemptsLeft int
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("incorrect email or password, %d attempt(s) left", e.AttemptsLeft)
}
