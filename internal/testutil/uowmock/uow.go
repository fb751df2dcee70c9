package uowmock

import (
	"context"
	"errors"

	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, refCode string, fn func(r uow.Repos, l *loan.LoanApplication) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLoanTx(fn func(context.Context, string, func(uow.Repos, *loan.LoanApplication) error) error) *UoW {
	m.WithinLoanTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough returns a UoW that skips transactions entirely: WithinTx calls
// fn against the given repos, WithinLoanTx fetches the loan through
// r.Loans.GetByRefCodeForUpdate and hands it to fn. Enough for usecase tests
// where serialization is not under test.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinLoanTxFn: func(ctx context.Context, refCode string, fn func(r uow.Repos, l *loan.LoanApplication) error) error {
			l, err := r.Loans.GetByRefCodeForUpdate(ctx, refCode)
			if err != nil {
				return err
			}
			return fn(r, l)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLoanTx(ctx context.Context, refCode string, fn func(r uow.Repos, l *loan.LoanApplication) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, refCode, fn)
	}
	return errUnimplemented
}
