package domain

// User represents a user of the service.
//
// ID is assigned by the store on creation and is zero until then.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUser creates an unsaved User. Input is expected to be validated already;
// the store assigns the ID.
func NewUser(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
	}
}

// IsPersisted reports whether the user has been assigned an ID by the store.
func (u *User) IsPersisted() bool {
	return u != nil && u.ID != 0
}
