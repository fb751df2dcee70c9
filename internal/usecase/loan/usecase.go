package loan

import (
	"context"
	"errors"
	"fmt"

	domainAsset "goldloan-backend/internal/domain/asset"
	"goldloan-backend/internal/domain/apperr"
	domainCustomer "goldloan-backend/internal/domain/customer"
	"goldloan-backend/internal/domain/identity"
	domainLoan "goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/uow"
	"goldloan-backend/pkg/refcode"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// KycVerifier is the narrow contract to the KYC collaborator; consulted only
// at application creation.
type KycVerifier interface {
	IsIdentityVerified(ctx context.Context, customerID string) (bool, error)
}

// RepoKycVerifier answers KYC checks from the customer store's verified flag.
type RepoKycVerifier struct{ Customers domainCustomer.Repository }

func (v RepoKycVerifier) IsIdentityVerified(ctx context.Context, customerID string) (bool, error) {
	c, err := v.Customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("customer %s: %w", customerID, apperr.ErrNotFound)
		}
		return false, err
	}
	return c.KycVerified, nil
}

type Config struct {
	// MinLoanAmount is the smallest amount a customer may request.
	MinLoanAmount float64
	// StrictStaffTransitions restricts the generic staff update to the
	// staff-reachable target set and refuses moves out of terminal states.
	// Off by default: the permissive behavior is an administrative override.
	StrictStaffTransitions bool
}

type Usecase struct {
	loans     domainLoan.Repository
	assets    domainAsset.Repository
	customers domainCustomer.Repository
	uow       uow.UnitOfWork
	kyc       KycVerifier
	cfg       Config
	log       *logrus.Logger
}

// NewUsecase: direct repos serve the read paths, the UoW serializes every
// transition, the verifier gates creation.
func NewUsecase(loans domainLoan.Repository, assets domainAsset.Repository, customers domainCustomer.Repository, tx uow.UnitOfWork, kyc KycVerifier, cfg Config, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.MinLoanAmount <= 0 {
		cfg.MinLoanAmount = 1000
	}
	return &Usecase{loans: loans, assets: assets, customers: customers, uow: tx, kyc: kyc, cfg: cfg, log: log}
}

type CreateInput struct {
	PurityCode    string  `json:"purity"`
	NetWeight     float64 `json:"net_weight"`
	AmountSeeking float64 `json:"amount_seeking"`
}

type CreateResult struct {
	RefCode string `json:"ref_code"`
	Status  string `json:"status"`
}

// Create opens a new application at PENDING together with its pledged asset.
// Only a customer with verified KYC may apply.
func (u *Usecase) Create(ctx context.Context, caller identity.Caller, in CreateInput) (*CreateResult, error) {
	if !caller.IsCustomer() {
		return nil, fmt.Errorf("create requires a customer caller: %w", apperr.ErrOwnership)
	}
	purity, err := domainAsset.ParsePurityCode(in.PurityCode)
	if err != nil {
		return nil, err
	}
	if in.NetWeight <= 0 {
		return nil, fmt.Errorf("net weight must be positive: %w", apperr.ErrInvalidArgument)
	}
	if in.AmountSeeking < u.cfg.MinLoanAmount {
		return nil, fmt.Errorf("amount seeking must be at least %.2f: %w", u.cfg.MinLoanAmount, apperr.ErrInvalidArgument)
	}

	verified, err := u.kyc.IsIdentityVerified(ctx, caller.CustomerID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, fmt.Errorf("customer %s: %w", caller.CustomerID, apperr.ErrUnverified)
	}

	var out *CreateResult
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a := &domainAsset.Asset{
			CustomerID: caller.CustomerID,
			Purity:     purity,
			Weight:     in.NetWeight,
		}
		if err := r.Assets.Create(ctx, a); err != nil {
			return err
		}
		l := &domainLoan.LoanApplication{
			RefCode:    refcode.New(),
			CustomerID: caller.CustomerID,
			AssetID:    a.ID,
			Amount:     in.AmountSeeking,
			Status:     domainLoan.StatusPending,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		out = &CreateResult{RefCode: l.RefCode, Status: string(l.Status)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"ref_code": out.RefCode, "customer_id": caller.CustomerID}).Info("loan application created")
	return out, nil
}

type StatusUpdateInput struct {
	NewStatus       string `json:"new_status"`
	RejectionReason string `json:"rejection_reason"`
}

// StaffUpdateStatus is the generic staff transition: any parseable target is
// accepted, except that moving into the offer-decision pair is only legal
// from OFFER_MADE. Storing/clearing the rejection reason rides on every
// write through LoanApplication.SetStatus.
func (u *Usecase) StaffUpdateStatus(ctx context.Context, caller identity.Caller, refCode string, in StatusUpdateInput) error {
	if !caller.IsStaff() {
		return fmt.Errorf("status update requires a staff caller: %w", apperr.ErrOwnership)
	}
	target, err := domainLoan.ParseStatus(in.NewStatus)
	if err != nil {
		return err
	}
	err = u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if target.OfferDecision() && l.Status != domainLoan.StatusOfferMade {
			return fmt.Errorf("cannot process offer decision: status is %s, must be %s: %w",
				l.Status, domainLoan.StatusOfferMade, apperr.ErrIllegalTransition)
		}
		if u.cfg.StrictStaffTransitions {
			if !target.StaffReachable() {
				return fmt.Errorf("status %s is not staff-reachable: %w", target, apperr.ErrInvalidArgument)
			}
			if l.Status.Terminal() {
				return fmt.Errorf("cannot update: status %s is terminal: %w", l.Status, apperr.ErrIllegalTransition)
			}
		}
		var reason *string
		if target == domainLoan.StatusRejectedForReview {
			reason = &in.RejectionReason
		}
		l.SetStatus(target, reason)
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return err
	}
	u.log.WithFields(logrus.Fields{"ref_code": refCode, "status": target, "staff_id": caller.StaffID}).Info("loan status updated")
	return nil
}

// SubmitCollateral is the customer bringing the gold in: VERIFIED → GOLD_SUBMITTED.
func (u *Usecase) SubmitCollateral(ctx context.Context, caller identity.Caller, refCode string) error {
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := ownedBy(l, caller); err != nil {
			return err
		}
		if err := requireStatus(l, domainLoan.StatusVerified, "submit gold"); err != nil {
			return err
		}
		l.SetStatus(domainLoan.StatusGoldSubmitted, nil)
		return r.Loans.Save(ctx, l)
	})
}

type EvaluationInput struct {
	FinalValue   float64 `json:"final_value"`
	QualityIndex float64 `json:"quality_index"`
}

// CompleteEvaluation appraises submitted collateral: GOLD_SUBMITTED →
// EVALUATED, fixing the loan's final value and the asset's quality index in
// the same transaction.
func (u *Usecase) CompleteEvaluation(ctx context.Context, caller identity.Caller, refCode string, in EvaluationInput) error {
	if !caller.IsStaff() {
		return fmt.Errorf("evaluation requires a staff caller: %w", apperr.ErrOwnership)
	}
	if in.FinalValue <= 0 {
		return fmt.Errorf("final value must be positive: %w", apperr.ErrInvalidArgument)
	}
	if in.QualityIndex <= 0 {
		return fmt.Errorf("quality index must be positive: %w", apperr.ErrInvalidArgument)
	}
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := requireStatus(l, domainLoan.StatusGoldSubmitted, "evaluate"); err != nil {
			return err
		}
		l.SetStatus(domainLoan.StatusEvaluated, nil)
		l.FinalValue = &in.FinalValue
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		a, err := r.Assets.GetByID(ctx, l.AssetID)
		if err != nil {
			return err
		}
		a.QualityIndex = &in.QualityIndex
		return r.Assets.Save(ctx, a)
	})
}

// DecideOffer records the customer's answer to a staff-made offer. The
// decision must be one of the offer pair and the offer must still be open.
func (u *Usecase) DecideOffer(ctx context.Context, caller identity.Caller, refCode string, decision string) error {
	target, err := domainLoan.ParseStatus(decision)
	if err != nil {
		return err
	}
	if !target.OfferDecision() {
		return fmt.Errorf("invalid offer decision %q: %w", decision, apperr.ErrInvalidArgument)
	}
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := ownedBy(l, caller); err != nil {
			return err
		}
		if err := requireStatus(l, domainLoan.StatusOfferMade, "process offer decision"); err != nil {
			return err
		}
		l.SetStatus(target, nil)
		return r.Loans.Save(ctx, l)
	})
}

// Disburse releases the funds: OFFER_ACCEPTED → DISBURSED (terminal).
func (u *Usecase) Disburse(ctx context.Context, caller identity.Caller, refCode string) error {
	if !caller.IsStaff() {
		return fmt.Errorf("disburse requires a staff caller: %w", apperr.ErrOwnership)
	}
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := requireStatus(l, domainLoan.StatusOfferAccepted, "disburse"); err != nil {
			return err
		}
		l.SetStatus(domainLoan.StatusDisbursed, nil)
		return r.Loans.Save(ctx, l)
	})
}

type FinePaymentInput struct {
	FineAmount float64 `json:"fine_amount"`
}

// PayFine settles the handling fine after a rejected offer:
// OFFER_REJECTED → PAID_FINE. Payment verification is simulated; the amount
// only has to be positive.
func (u *Usecase) PayFine(ctx context.Context, caller identity.Caller, refCode string, in FinePaymentInput) error {
	if in.FineAmount <= 0 {
		return fmt.Errorf("fine amount must be positive: %w", apperr.ErrInvalidArgument)
	}
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := ownedBy(l, caller); err != nil {
			return err
		}
		if err := requireStatus(l, domainLoan.StatusOfferRejected, "pay fine"); err != nil {
			return err
		}
		l.SetStatus(domainLoan.StatusPaidFine, nil)
		return r.Loans.Save(ctx, l)
	})
}

// CollectCollateral hands the gold back after the fine is paid:
// PAID_FINE → GOLD_COLLECTED (terminal).
func (u *Usecase) CollectCollateral(ctx context.Context, caller identity.Caller, refCode string) error {
	if !caller.IsStaff() {
		return fmt.Errorf("collect requires a staff caller: %w", apperr.ErrOwnership)
	}
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := requireStatus(l, domainLoan.StatusPaidFine, "collect gold"); err != nil {
			return err
		}
		l.SetStatus(domainLoan.StatusGoldCollected, nil)
		return r.Loans.Save(ctx, l)
	})
}

// ReApply resets a flagged application: REJECTED_FOR_REVIEW → PENDING. The
// prior rejection reason is scrubbed by SetStatus.
func (u *Usecase) ReApply(ctx context.Context, caller identity.Caller, refCode string) error {
	return u.withLoan(ctx, refCode, func(r uow.Repos, l *domainLoan.LoanApplication) error {
		if err := ownedBy(l, caller); err != nil {
			return err
		}
		if err := requireStatus(l, domainLoan.StatusRejectedForReview, "re-apply"); err != nil {
			return err
		}
		l.SetStatus(domainLoan.StatusPending, nil)
		return r.Loans.Save(ctx, l)
	})
}

// withLoan runs fn inside a row-locked transaction on the loan, translating
// a missing reference code into the NotFound kind.
func (u *Usecase) withLoan(ctx context.Context, refCode string, fn func(r uow.Repos, l *domainLoan.LoanApplication) error) error {
	err := u.uow.WithinLoanTx(ctx, refCode, fn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("loan application not found with ref code %s: %w", refCode, apperr.ErrNotFound)
	}
	return err
}

// ownedBy is the ownership guard; it runs before any state guard so the two
// failure kinds stay distinguishable.
func ownedBy(l *domainLoan.LoanApplication, caller identity.Caller) error {
	if !caller.IsCustomer() || l.CustomerID != caller.CustomerID {
		return fmt.Errorf("loan %s: %w", l.RefCode, apperr.ErrOwnership)
	}
	return nil
}

func requireStatus(l *domainLoan.LoanApplication, want domainLoan.Status, action string) error {
	if l.Status != want {
		return fmt.Errorf("cannot %s: current status is %s, must be %s: %w",
			action, l.Status, want, apperr.ErrIllegalTransition)
	}
	return nil
}
