package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound     = errors.New("data not found")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrTooManyConflicts = errors.New("too many concurrent updates for the same order")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Webhook authenticity.
	ErrUnauthenticated = errors.New("callback signature is missing or invalid")

	// * Gateway errors.
	ErrValidation         = errors.New("malformed amount or msisdn")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// * Business errors.
	ErrInvalidTransition         = errors.New("transition not allowed from current state")
	ErrConflictingTerminalStatus = errors.New("provider reported a different terminal status")
	ErrCollectionInFlight        = errors.New("order already has a pending collection")
)
