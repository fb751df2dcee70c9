package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/identity"
	domainLoan "goldloan-backend/internal/domain/loan"

	"gorm.io/gorm"
)

// LoanSummary is the denormalized row the dashboards show.
type LoanSummary struct {
	RefCode         string    `json:"ref_code"`
	Status          string    `json:"status"`
	Name            string    `json:"name"`
	KnNumber        string    `json:"kn_number"`
	Type            string    `json:"type"`
	CreatedAt       time.Time `json:"created_at"`
	FinalValue      *float64  `json:"final_value,omitempty"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
}

type ApplicantDetails struct {
	FullName     string `json:"full_name"`
	KnNumber     string `json:"kn_number"`
	MobileNumber string `json:"mobile_number"`
	EmailID      string `json:"email_id"`
}

type AssetDetails struct {
	Purity       string   `json:"purity"`
	NetWeight    float64  `json:"net_weight"`
	QualityIndex *float64 `json:"quality_index,omitempty"`
}

type FinancialDetails struct {
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
	IfscCode          string `json:"ifsc_code"`
}

type LoanDetails struct {
	RefCode         string           `json:"ref_code"`
	Status          string           `json:"status"`
	Amount          float64          `json:"amount"`
	FinalValue      *float64         `json:"final_value,omitempty"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	Applicant       ApplicantDetails `json:"applicant"`
	Asset           AssetDetails     `json:"asset"`
	Financial       FinancialDetails `json:"financial"`
}

// ListByCustomer returns the caller's own applications, newest data as
// stored; no transition logic runs on the read path.
func (u *Usecase) ListByCustomer(ctx context.Context, caller identity.Caller) ([]LoanSummary, error) {
	loans, err := u.loans.ListByCustomerID(ctx, caller.CustomerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanSummary, 0, len(loans))
	for i := range loans {
		out = append(out, u.summarize(ctx, &loans[i]))
	}
	return out, nil
}

// ListAll feeds the staff dashboard.
func (u *Usecase) ListAll(ctx context.Context) ([]LoanSummary, error) {
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanSummary, 0, len(loans))
	for i := range loans {
		out = append(out, u.summarize(ctx, &loans[i]))
	}
	return out, nil
}

// Details joins loan, asset, and customer into the single-application view.
// Staff may inspect any application; a customer only their own.
func (u *Usecase) Details(ctx context.Context, caller identity.Caller, refCode string) (*LoanDetails, error) {
	l, err := u.loans.GetByRefCode(ctx, refCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("loan application not found with ref code %s: %w", refCode, apperr.ErrNotFound)
		}
		return nil, err
	}
	if caller.IsCustomer() && l.CustomerID != caller.CustomerID {
		return nil, fmt.Errorf("loan %s: %w", refCode, apperr.ErrOwnership)
	}

	d := &LoanDetails{
		RefCode:         l.RefCode,
		Status:          string(l.Status),
		Amount:          l.Amount,
		FinalValue:      l.FinalValue,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt,
	}
	if c, err := u.customers.GetByID(ctx, l.CustomerID); err == nil {
		d.Applicant = ApplicantDetails{
			FullName:     c.Name,
			KnNumber:     c.KnNumber,
			MobileNumber: c.MobileNumber,
			EmailID:      c.Email,
		}
		d.Financial = FinancialDetails{
			AccountHolderName: c.Name,
			AccountNumber:     c.BankAccountNumber,
			IfscCode:          c.IfscCode,
		}
	}
	if a, err := u.assets.GetByID(ctx, l.AssetID); err == nil {
		d.Asset = AssetDetails{
			Purity:       a.Purity.Label(),
			NetWeight:    a.Weight,
			QualityIndex: a.QualityIndex,
		}
	}
	return d, nil
}

func (u *Usecase) summarize(ctx context.Context, l *domainLoan.LoanApplication) LoanSummary {
	s := LoanSummary{
		RefCode:         l.RefCode,
		Status:          string(l.Status),
		Name:            "Unknown",
		KnNumber:        "N/A",
		Type:            "Gold Loan",
		CreatedAt:       l.CreatedAt,
		FinalValue:      l.FinalValue,
		RejectionReason: l.RejectionReason,
	}
	if c, err := u.customers.GetByID(ctx, l.CustomerID); err == nil {
		s.Name = c.Name
		s.KnNumber = c.KnNumber
	}
	if a, err := u.assets.GetByID(ctx, l.AssetID); err == nil {
		s.Type = "Gold Loan - " + a.Purity.Label()
	}
	return s
}
