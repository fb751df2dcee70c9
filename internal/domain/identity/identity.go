// Package identity carries the already-authenticated caller through the
// engine. Authentication itself happens at the transport edge; the engine
// only ever sees an explicit Caller value, never ambient state.
package identity

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
)

// Caller identifies who triggered an operation. Exactly one of CustomerID or
// StaffID is set, depending on Role.
type Caller struct {
	Role       Role
	CustomerID string // 32-char lowercase hex, set when Role == RoleCustomer
	StaffID    string // set when Role == RoleStaff
}

func Customer(id string) Caller { return Caller{Role: RoleCustomer, CustomerID: id} }
func Staff(id string) Caller    { return Caller{Role: RoleStaff, StaffID: id} }

func (c Caller) IsCustomer() bool { return c.Role == RoleCustomer }
func (c Caller) IsStaff() bool    { return c.Role == RoleStaff }
