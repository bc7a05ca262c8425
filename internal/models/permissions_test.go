package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsHas(t *testing.T) {
	var none Permissions
	all := AllPermissions()
	for _, perm := range []Permission{CanCreateBook, CanUpdateBook, CanDeleteBook, CanUpdateUser, CanDeleteUser, CanReadUsers} {
		assert.False(t, none.Has(perm), "zero value grants %s", perm)
		assert.True(t, all.Has(perm), "admin lacks %s", perm)
	}
	assert.False(t, all.Has(Permission("canLaunchRockets")))
}

func TestPermissionsMergeIsShallow(t *testing.T) {
	yes, no := true, false
	base := Permissions{CanCreateBook: true, CanReadUsers: true}

	merged := base.Merge(PermissionsPatch{CanUpdateBook: &yes, CanReadUsers: &no})

	assert.Equal(t, Permissions{CanCreateBook: true, CanUpdateBook: true}, merged)
	assert.True(t, base.CanReadUsers, "receiver must not be mutated")
}
