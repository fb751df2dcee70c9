// Package apperr holds the error kinds every engine operation can return.
// Operations wrap these sentinels with fmt.Errorf("...: %w", ...) so the
// message carries diagnostics (current status, expected status) while callers
// still match the kind with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound: reference code or customer lookup resolved to nothing.
	ErrNotFound = errors.New("not found")

	// ErrOwnership: caller is not the pledging customer of the loan.
	// Kept distinct from ErrNotFound; the HTTP layer maps them to 404/403.
	ErrOwnership = errors.New("access denied: loan does not belong to caller")

	// ErrIllegalTransition: current status does not satisfy the operation's
	// precondition.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidArgument: unparseable status literal or a numeric field out
	// of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnverified: create attempted for a customer without verified KYC.
	ErrUnverified = errors.New("customer identity not verified")
)
