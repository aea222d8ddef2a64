package service

import (
	"errors"
	"strings"
)

var (
	ErrPieceNotFound      = errors.New("piece not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("a user with the given username or email is already registered")
	ErrInvalidCredentials = errors.New("password or username is incorrect")
	ErrInvalidResetToken  = errors.New("the password reset link is invalid or has expired")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long and contain both letters and numbers")
	ErrExportFailed       = errors.New("export failed")
)

// ValidationError lists every rejected field of a submission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ",")
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Messages) == 0 {
		return nil
	}
	return e
}
