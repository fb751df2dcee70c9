package uow

import (
	"context"

	"goldloan-backend/internal/domain/asset"
	"goldloan-backend/internal/domain/customer"
	"goldloan-backend/internal/domain/loan"
)

type Repos struct {
	Loans     loan.Repository
	Assets    asset.Repository
	Customers customer.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Two concurrent
	// transitions on the same reference code serialize here; the loser
	// re-reads the winner's status and fails its state guard.
	WithinLoanTx(ctx context.Context, refCode string, fn func(r Repos, l *loan.LoanApplication) error) error
}
