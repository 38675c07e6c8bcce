package usecase

import (
	"errors"
	"fmt"
)

// ErrAuthentication indicates the timesheet app rejected the login form.
var ErrAuthentication = errors.New("your ID or password is wrong")

// RegistrationRejectedError carries the message of the validation dialog
// the page raised while reconciling the entered project codes.
type RegistrationRejectedError struct {
	Message string
}

func (e *RegistrationRejectedError) Error() string {
	return fmt.Sprintf("registration rejected by the page: %s", e.Message)
}
