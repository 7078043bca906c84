package models

// User is a dashboard account
type User struct {
	ID          string   `json:"id" example:"user1"`
	Username    string   `json:"username" validate:"required" example:"john.student"`
	Password    string   `json:"-" validate:"required"` // bcrypt hash, never serialized
	DisplayName string   `json:"displayName" validate:"required" example:"John Student"`
	Role        RoleType `json:"role" validate:"oneof=student instructor" example:"student"`
}

// Key returns the user id
func (u User) Key() string { return u.ID }

// WithKey returns a copy of u carrying id
func (u User) WithKey(id string) User {
	u.ID = id
	return u
}

// Clone returns a copy of u; User has no reference fields
func (u User) Clone() User { return u }
