package models

import "time"

// Role is the access tier of an account. It is fixed when the account is
// created and never changes afterwards.
type Role string

const (
	// RoleUser is the tier of regular reporters of lost and found items.
	RoleUser Role = "user"

	// RoleAdmin is the tier of administrators who publish notes and manage users.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// User represents a registered account as it is stored in the database.
// The password hash must never leave the server: use [User.Public] to build
// the representation that is sent to clients.
type User struct {
	// UserID is the opaque unique identifier assigned at creation.
	UserID string `json:"_id"`

	Name     string `json:"name"`
	Username string `json:"username"`

	// Email is unique across all users. Uniqueness is enforced by the
	// storage layer.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt output (salt embedded).
	PasswordHash string `json:"-"`

	// Role is fixed at creation and not editable through profile updates.
	Role Role `json:"role"`

	Contact        string `json:"contact"`
	Gender         string `json:"gender"`
	ProfilePicture string `json:"profilePic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the client-facing projection of the user without the
// password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:         u.UserID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		Contact:        u.Contact,
		Gender:         u.Gender,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// PublicUser is the projection of [User] that is safe to transmit.
type PublicUser struct {
	UserID         string    `json:"_id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Contact        string    `json:"contact"`
	Gender         string    `json:"gender"`
	ProfilePicture string    `json:"profilePic"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserUpdate is a sparse set of mutable profile fields. A nil field is left
// untouched by the update. Role has no representation here on purpose:
// it cannot be changed once the account exists.
type UserUpdate struct {
	UserID string `json:"-"`

	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Username       *string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,max=20"`
	Contact        *string `json:"contact,omitempty" validate:"omitempty,max=30"`
	ProfilePicture *string `json:"-"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Username == nil &&
		u.Email == nil &&
		u.Gender == nil &&
		u.Contact == nil &&
		u.ProfilePicture == nil
}
