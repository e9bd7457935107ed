// Package models defines the marketplace records persisted by LawnBook:
// users in one of three roles and the bookings that link them.
package models

// Role classifies a user account.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleProvider is stored as "mower" to stay compatible with existing data.
	RoleProvider Role = "mower"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps user input to a Role. "provider" is accepted as an alias
// for the mower role.
func ParseRole(s string) (Role, bool) {
	if s == "provider" {
		return RoleProvider, true
	}
	r := Role(s)
	return r, r.Valid()
}

// User is a marketplace account.
//
// Services, IsApproved and IsAvailable only carry meaning for providers.
// Passwords are kept in plaintext.
type User struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	Role              Role    `json:"role"`
	Services          string  `json:"services"`
	IsApproved        bool    `json:"isApproved"`
	IsAvailable       bool    `json:"isAvailable"`
	CompletedBookings int     `json:"completedBookings"`
	Rating            float64 `json:"rating"`
	ProfilePicture    string  `json:"profilePicture"`
}

func (u *User) IsProvider() bool { return u.Role == RoleProvider }
func (u *User) IsCustomer() bool { return u.Role == RoleCustomer }
func (u *User) IsAdmin() bool    { return u.Role == RoleAdmin }

// Bookable reports whether customers may pick this user.
func (u *User) Bookable() bool {
	return u.IsProvider() && u.IsApproved && u.IsAvailable
}

// NewUser builds a freshly signed-up user. Providers start unapproved;
// everyone starts unavailable with zero completed bookings. Services are
// dropped for non-providers.
func NewUser(id int64, name, email, password string, role Role, services string) User {
	u := User{
		ID:         id,
		Name:       name,
		Email:      email,
		Password:   password,
		Role:       role,
		IsApproved: role != RoleProvider,
	}
	if role == RoleProvider {
		u.Services = services
	}
	return u
}
