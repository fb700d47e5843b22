package typesync

import (
	"fmt"
	"strings"
)

// Error is a collaborator failure re-described for the user.
// Error() returns only the translated message; the cause stays reachable
// through errors.Is and errors.As.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

// InstallError reports a failed batch install of names.
func InstallError(names []ModuleName, err error) error {
	return &Error{
		Msg: fmt.Sprintf("error while installing module(s) `%s`", strings.Join(names, ", ")),
		Err: err,
	}
}

// LocalCheckError reports a failed local declaration lookup for name.
func LocalCheckError(name ModuleName, err error) error {
	return &Error{Msg: fmt.Sprintf("error while checking local module `%s`", name), Err: err}
}

// RemoteCheckError reports a failed registry lookup of the companion of name.
func RemoteCheckError(name ModuleName, err error) error {
	return &Error{Msg: fmt.Sprintf("error while checking remote module `%s`", CompanionName(name)), Err: err}
}
