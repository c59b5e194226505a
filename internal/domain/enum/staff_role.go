package enum

// StaffRole represents a staff member's role in the pharmacy
type StaffRole string

const (
	RoleAdmin      StaffRole = "admin"
	RolePharmacist StaffRole = "pharmacist"
	RoleCashier    StaffRole = "cashier"
)

// Valid reports whether the role is one of the known values.
func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RolePharmacist, RoleCashier:
		return true
	}
	return false
}

// CanManageInventory reports whether the role may create products and
// restock orders. Cashiers can only sell.
func (r StaffRole) CanManageInventory() bool {
	return r == RoleAdmin || r == RolePharmacist
}
