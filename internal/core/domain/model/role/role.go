// Package role defines the typed caller roles used by the authorization
// layer. The remote users service speaks in role strings; they are parsed
// into a Role at the boundary so the rest of the core never branches on
// raw strings. Anything unrecognized parses to RoleUnknown, which every
// permission rule treats as "not involved".
package role

// Role is a caller's resolved role.
type Role int

const (
	// RoleUnknown is the explicit outcome for unrecognized role strings.
	RoleUnknown Role = iota

	// Admin may do everything.
	Admin

	// Customer placed orders and may view and rate their own.
	Customer

	// Vendor fulfills orders and manages its delivery zone and couriers.
	Vendor

	// Courier delivers orders assigned to them.
	Courier
)

// getRoleStrings returns the wire representation of every known Role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Admin:    "admin",
		Customer: "customer",
		Vendor:   "vendor",
		Courier:  "courier",
	}
}

// ParseRole converts a role string from the users service into a Role.
// Unknown strings yield RoleUnknown rather than an error: an unrecognized
// role is a valid answer that simply grants nothing.
func ParseRole(value string) Role {
	for r, str := range getRoleStrings() {
		if str == value {
			return r
		}
	}
	return RoleUnknown
}

// String returns the wire name of the role, or "unknown". Implements
// fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
