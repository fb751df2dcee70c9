package mysql

import (
	"context"

	loanDomain "goldloan-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByRefCode(ctx context.Context, refCode string) (*loanDomain.LoanApplication, error) {
	var out loanDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("ref_code = ?", refCode).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// GetByRefCodeForUpdate takes a row lock; only meaningful inside a
// transaction (see GormUoW.WithinLoanTx).
func (r *LoanRepository) GetByRefCodeForUpdate(ctx context.Context, refCode string) (*loanDomain.LoanApplication, error) {
	var out loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("ref_code = ?", refCode).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]loanDomain.LoanApplication, error) {
	var out []loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.LoanApplication, error) {
	var out []loanDomain.LoanApplication
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
