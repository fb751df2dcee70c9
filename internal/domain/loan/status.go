package loan

import (
	"fmt"
	"strings"

	"goldloan-backend/internal/domain/apperr"
)

// Status is the closed set of lifecycle states. Stored as its uppercase
// string form; ParseStatus is the only way in from external input.
type Status string

const (
	StatusPending           Status = "PENDING"
	StatusVerified          Status = "VERIFIED"
	StatusGoldSubmitted     Status = "GOLD_SUBMITTED"
	StatusEvaluated         Status = "EVALUATED"
	StatusOfferMade         Status = "OFFER_MADE"
	StatusOfferAccepted     Status = "OFFER_ACCEPTED"
	StatusOfferRejected     Status = "OFFER_REJECTED"
	StatusRejectedForReview Status = "REJECTED_FOR_REVIEW"
	StatusRejected          Status = "REJECTED"
	StatusDisbursed         Status = "DISBURSED"
	StatusPaidFine          Status = "PAID_FINE"
	StatusGoldCollected     Status = "GOLD_COLLECTED"
	StatusLoanNotApproved   Status = "LOAN_NOT_APPROVED"
)

var allStatuses = map[Status]bool{
	StatusPending:           true,
	StatusVerified:          true,
	StatusGoldSubmitted:     true,
	StatusEvaluated:         true,
	StatusOfferMade:         true,
	StatusOfferAccepted:     true,
	StatusOfferRejected:     true,
	StatusRejectedForReview: true,
	StatusRejected:          true,
	StatusDisbursed:         true,
	StatusPaidFine:          true,
	StatusGoldCollected:     true,
	StatusLoanNotApproved:   true,
}

// ParseStatus accepts a status literal case-insensitively and fails with
// apperr.ErrInvalidArgument on anything outside the closed set.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !allStatuses[s] {
		return "", fmt.Errorf("invalid loan status %q: %w", raw, apperr.ErrInvalidArgument)
	}
	return s, nil
}

// Statuses returns every known status; handy for exhaustive tests.
func Statuses() []Status {
	out := make([]Status, 0, len(allStatuses))
	for s := range allStatuses {
		out = append(out, s)
	}
	return out
}

// Terminal reports whether no further transitions are modeled from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusDisbursed, StatusGoldCollected, StatusRejected, StatusLoanNotApproved:
		return true
	}
	return false
}

// OfferDecision reports whether s is one of the two customer-chosen outcomes
// following a staff-made offer.
func (s Status) OfferDecision() bool {
	return s == StatusOfferAccepted || s == StatusOfferRejected
}

// StaffReachable reports whether staff may target s through the generic
// status update when strict transitions are enabled.
func (s Status) StaffReachable() bool {
	switch s {
	case StatusVerified, StatusOfferMade, StatusRejectedForReview,
		StatusRejected, StatusLoanNotApproved, StatusDisbursed, StatusGoldCollected:
		return true
	}
	return false
}
