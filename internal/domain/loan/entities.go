package loan

import (
	"time"
)

// LoanApplication is the unit of lifecycle tracking. One application pledges
// exactly one asset; both belong to the same customer for their whole life.
type LoanApplication struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	RefCode    string `gorm:"size:12;uniqueIndex:ux_loans_ref_code" json:"ref_code"`
	CustomerID string `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	AssetID    uint64 `gorm:"index:idx_loans_asset" json:"-"`

	// Amount the customer asked for; immutable after creation.
	Amount float64 `gorm:"type:decimal(18,2)" json:"amount"`
	// FinalValue is the institution's appraised offer value; nil until the
	// evaluation transition runs.
	FinalValue *float64 `gorm:"type:decimal(18,2)" json:"final_value,omitempty"`
	// RejectionReason is non-nil iff Status == REJECTED_FOR_REVIEW.
	RejectionReason *string `gorm:"type:text" json:"rejection_reason,omitempty"`

	Status          Status    `gorm:"type:varchar(24);default:'PENDING'" json:"status"`
	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// SetStatus performs a status write while keeping the rejection-reason
// invariant: the reason is stored only when moving into REJECTED_FOR_REVIEW
// and cleared on every other write. All engine transitions go through here.
func (l *LoanApplication) SetStatus(s Status, rejectionReason *string) {
	l.Status = s
	if s == StatusRejectedForReview {
		l.RejectionReason = rejectionReason
	} else {
		l.RejectionReason = nil
	}
	l.StatusUpdatedAt = time.Now().UTC()
}
