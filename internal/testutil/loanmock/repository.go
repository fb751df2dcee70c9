package loanmock

import (
	"context"

	domain "goldloan-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.LoanApplication) error
	GetByRefCodeFn          func(ctx context.Context, refCode string) (*domain.LoanApplication, error)
	GetByRefCodeForUpdateFn func(ctx context.Context, refCode string) (*domain.LoanApplication, error)
	ListByCustomerIDFn      func(ctx context.Context, customerID string) ([]domain.LoanApplication, error)
	ListAllFn               func(ctx context.Context) ([]domain.LoanApplication, error)
	SaveFn                  func(ctx context.Context, l *domain.LoanApplication) error
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByRefCode(ctx context.Context, refCode string) (*domain.LoanApplication, error) {
	if m.GetByRefCodeFn != nil {
		return m.GetByRefCodeFn(ctx, refCode)
	}
	return nil, context.Canceled // or errors.New("not implemented")
}

func (m *Repo) GetByRefCodeForUpdate(ctx context.Context, refCode string) (*domain.LoanApplication, error) {
	if m.GetByRefCodeForUpdateFn != nil {
		return m.GetByRefCodeForUpdateFn(ctx, refCode)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.LoanApplication, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.LoanApplication, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
