package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestCustomer_GetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	seed := customerSQLite{
		ID:          "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		KnNumber:    "KN-0042",
		KycVerified: true,
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Asha Rao" || got.KnNumber != "KN-0042" || !got.KycVerified {
		t.Errorf("unexpected customer: %+v", got)
	}
}

func TestCustomer_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	if _, err := repo.GetByID(context.Background(), "ffffffffffffffffffffffffffffffff"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
