package role_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/role"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse every known role string", func(t *testing.T) {
		assert.Equal(t, role.Admin, role.ParseRole("admin"))
		assert.Equal(t, role.Customer, role.ParseRole("customer"))
		assert.Equal(t, role.Vendor, role.ParseRole("vendor"))
		assert.Equal(t, role.Courier, role.ParseRole("courier"))
	})

	t.Run("should map anything else to unknown", func(t *testing.T) {
		for _, value := range []string{"", "ADMIN", "random", "root"} {
			assert.Equal(t, role.RoleUnknown, role.ParseRole(value), value)
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should round-trip wire names", func(t *testing.T) {
		for _, r := range []role.Role{role.Admin, role.Customer, role.Vendor, role.Courier} {
			assert.Equal(t, r, role.ParseRole(r.String()))
		}
	})

	t.Run("unknown stringifies as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", role.RoleUnknown.String())
		assert.Equal(t, "unknown", role.Role(42).String())
	})
}
