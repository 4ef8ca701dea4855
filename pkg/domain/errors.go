package domain

import "errors"

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicatePhone is returned when an account with the same phone number already exists.
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrInvalidAmount is returned when a transfer amount is not a positive
	// decimal with at most two fractional digits. Requests failing this check
	// are rejected before any store access and never reach the ledger.
	ErrInvalidAmount = errors.New("amount must be a positive decimal with at most two decimal places")

	// ErrDestinationNotFound is returned when the destination phone number
	// does not resolve to an account.
	ErrDestinationNotFound = errors.New("destination account does not exist")

	// ErrSelfTransfer is returned when a transfer is attempted from an account to itself.
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrInsufficientFunds is returned when the source balance does not cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidOTP is returned when the one-time code does not match.
	ErrInvalidOTP = errors.New("invalid one-time code")
)
