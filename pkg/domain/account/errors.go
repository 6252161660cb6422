package account

import "errors"

var (
	// ErrInvalidAmount is returned when a supplied monetary value violates a
	// business rule: a non-positive deposit or withdrawal, or an initial
	// balance below the minimum.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a withdrawal would drop the
	// balance below the minimum balance floor.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when an account number does not exist
	// in the ledger's registry.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidName is returned when a holder name contains characters
	// outside letters, spaces, hyphens and apostrophes, or is empty.
	ErrInvalidName = errors.New("invalid name format")
)
