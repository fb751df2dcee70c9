package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanApplication) error
	GetByRefCode(ctx context.Context, refCode string) (*LoanApplication, error)
	// GetByRefCodeForUpdate locks the row for the duration of the enclosing
	// transaction so concurrent transitions serialize.
	GetByRefCodeForUpdate(ctx context.Context, refCode string) (*LoanApplication, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]LoanApplication, error)
	ListAll(ctx context.Context) ([]LoanApplication, error)
	Save(ctx context.Context, l *LoanApplication) error
}
