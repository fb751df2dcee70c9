package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "goldloan-backend/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.LoanApplication{RefCode: "GLN-AAAA1111"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.LoanApplication) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByRefCode(t *testing.T) {
	ctx := context.Background()
	want := &domain.LoanApplication{RefCode: "GLN-BBBB2222"}

	// Uses provided func
	called := false
	m := &Repo{
		GetByRefCodeFn: func(gotCtx context.Context, refCode string) (*domain.LoanApplication, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByRefCode ctx mismatch")
			}
			if refCode != "GLN-BBBB2222" {
				t.Fatalf("GetByRefCode refCode mismatch: got %s", refCode)
			}
			return want, nil
		},
	}
	got, err := m.GetByRefCode(ctx, "GLN-BBBB2222")
	if err != nil {
		t.Fatalf("GetByRefCode: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByRefCode: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByRefCodeFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByRefCode(ctx, "GLN-BBBB2222")
	if err != context.Canceled {
		t.Fatalf("GetByRefCode default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByRefCode default: want nil loan, got %+v", got)
	}
}

func TestRepo_GetByRefCodeForUpdate(t *testing.T) {
	ctx := context.Background()
	want := &domain.LoanApplication{RefCode: "GLN-CCCC3333"}

	// Uses provided func
	called := false
	m := &Repo{
		GetByRefCodeForUpdateFn: func(gotCtx context.Context, refCode string) (*domain.LoanApplication, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByRefCodeForUpdate ctx mismatch")
			}
			if refCode != "GLN-CCCC3333" {
				t.Fatalf("GetByRefCodeForUpdate refCode mismatch: got %s", refCode)
			}
			return want, nil
		},
	}
	got, err := m.GetByRefCodeForUpdate(ctx, "GLN-CCCC3333")
	if err != nil {
		t.Fatalf("GetByRefCodeForUpdate: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByRefCodeForUpdate: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByRefCodeForUpdateFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByRefCodeForUpdate(ctx, "GLN-CCCC3333")
	if err != context.Canceled {
		t.Fatalf("GetByRefCodeForUpdate default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByRefCodeForUpdate default: want nil loan, got %+v", got)
	}
}

func TestRepo_ListByCustomerID(t *testing.T) {
	ctx := context.Background()
	want := []domain.LoanApplication{{RefCode: "GLN-DDDD4444"}}

	called := false
	m := &Repo{
		ListByCustomerIDFn: func(gotCtx context.Context, customerID string) ([]domain.LoanApplication, error) {
			called = true
			if customerID != "cust-1" {
				t.Fatalf("ListByCustomerID customerID mismatch: got %s", customerID)
			}
			return want, nil
		},
	}
	got, err := m.ListByCustomerID(ctx, "cust-1")
	if err != nil {
		t.Fatalf("ListByCustomerID: unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].RefCode != "GLN-DDDD4444" {
		t.Fatalf("ListByCustomerID: unexpected result %+v", got)
	}
	if !called {
		t.Fatalf("ListByCustomerIDFn not called")
	}

	// Default (nil func) → empty, nil error
	m = &Repo{}
	got, err = m.ListByCustomerID(ctx, "cust-1")
	if err != nil || got != nil {
		t.Fatalf("ListByCustomerID default: want nil/nil, got %v/%v", got, err)
	}
}

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.LoanApplication{RefCode: "GLN-EEEE5555"}

	// Uses provided func
	called := false
	wantErr := errors.New("save-fail")
	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.LoanApplication) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Save ctx mismatch")
			}
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("SaveFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
}
