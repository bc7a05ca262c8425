package models

// Permission names a single capability a user can be granted.
type Permission string

const (
	CanCreateBook Permission = "canCreateBook"
	CanUpdateBook Permission = "canUpdateBook"
	CanDeleteBook Permission = "canDeleteBook"
	CanUpdateUser Permission = "canUpdateUser"
	CanDeleteUser Permission = "canDeleteUser"
	CanReadUsers  Permission = "canReadUsers"
)

// Permissions is the closed set of capabilities attached to a user. The zero value grants nothing.
type Permissions struct {
	CanCreateBook bool `json:"canCreateBook"`
	CanUpdateBook bool `json:"canUpdateBook"`
	CanDeleteBook bool `json:"canDeleteBook"`
	CanUpdateUser bool `json:"canUpdateUser"`
	CanDeleteUser bool `json:"canDeleteUser"`
	CanReadUsers  bool `json:"canReadUsers"`
}

// AllPermissions grants every capability. Used for the seeded administrator.
func AllPermissions() Permissions {
	return Permissions{
		CanCreateBook: true,
		CanUpdateBook: true,
		CanDeleteBook: true,
		CanUpdateUser: true,
		CanDeleteUser: true,
		CanReadUsers:  true,
	}
}

// Has reports whether the capability is granted. Unknown names are never granted.
func (p Permissions) Has(perm Permission) bool {
	switch perm {
	case CanCreateBook:
		return p.CanCreateBook
	case CanUpdateBook:
		return p.CanUpdateBook
	case CanDeleteBook:
		return p.CanDeleteBook
	case CanUpdateUser:
		return p.CanUpdateUser
	case CanDeleteUser:
		return p.CanDeleteUser
	case CanReadUsers:
		return p.CanReadUsers
	default:
		return false
	}
}

// PermissionsPatch carries the subset of capabilities a request wants to change.
type PermissionsPatch struct {
	CanCreateBook *bool `json:"canCreateBook,omitempty"`
	CanUpdateBook *bool `json:"canUpdateBook,omitempty"`
	CanDeleteBook *bool `json:"canDeleteBook,omitempty"`
	CanUpdateUser *bool `json:"canUpdateUser,omitempty"`
	CanDeleteUser *bool `json:"canDeleteUser,omitempty"`
	CanReadUsers  *bool `json:"canReadUsers,omitempty"`
}

// Merge applies the fields present in the patch over p and returns the result.
func (p Permissions) Merge(patch PermissionsPatch) Permissions {
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.CanCreateBook, patch.CanCreateBook)
	apply(&p.CanUpdateBook, patch.CanUpdateBook)
	apply(&p.CanDeleteBook, patch.CanDeleteBook)
	apply(&p.CanUpdateUser, patch.CanUpdateUser)
	apply(&p.CanDeleteUser, patch.CanDeleteUser)
	apply(&p.CanReadUsers, patch.CanReadUsers)
	return p
}
