package models

// User captures an identity able to authenticate against the API.
type User struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	IsDisabled   bool        `json:"isDisabled"`
	Permissions  Permissions `json:"permissions"`
}

// UserRef is the public projection of a user embedded in other resources.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref returns the minimal public view of the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
