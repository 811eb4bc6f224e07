package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrInvalidPayload        = errors.New("invalid collaborator payload")
	ErrActionRejected        = errors.New("action rejected")
	ErrLeagueClosed          = errors.New("league has ended")
)
