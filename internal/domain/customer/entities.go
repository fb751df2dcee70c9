package customer

import "time"

// Customer holds the slice of the customer record the lending engine and
// its projections need. Credentials and the full KYC dossier live elsewhere.
type Customer struct {
	// Public identifier (32-char lowercase hex), handed out at signup.
	ID                string    `gorm:"primaryKey;column:id;type:char(32)" json:"id"`
	Name              string    `gorm:"size:120" json:"name"`
	Email             string    `gorm:"size:255;uniqueIndex:ux_customers_email" json:"email"`
	KnNumber          string    `gorm:"column:kn_number;size:32" json:"kn_number"`
	MobileNumber      string    `gorm:"size:15" json:"mobile_number"`
	BankAccountNumber string    `gorm:"size:20" json:"-"`
	IfscCode          string    `gorm:"size:11" json:"-"`
	KycVerified       bool      `gorm:"column:kyc_verified;default:false" json:"kyc_verified"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
