package asset

import "time"

// Asset is the pledged gold item, created together with its loan
// application and never reused across loans.
type Asset struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string `gorm:"size:32;index:idx_assets_customer" json:"customer_id"`
	Purity     Purity `gorm:"type:varchar(16)" json:"purity"`
	// Weight in grams.
	Weight float64 `gorm:"type:decimal(18,2)" json:"weight"`
	// QualityIndex is nil until the evaluation transition runs; written
	// exactly once.
	QualityIndex *float64 `gorm:"type:decimal(6,2)" json:"quality_index,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string { return "assets" }
