package marketplace

import (
	"slices"

	"github.com/dmitrijs2005/lawnbook/internal/models"
)

// State is the in-memory application state. Reads return copies so callers
// cannot mutate it behind the controller's back.
type State struct {
	users    []models.User
	bookings []models.Booking

	sessionUserID int64
	sessionID     string

	selectedProviderID int64
}

func (s *State) Users() []models.User {
	return slices.Clone(s.users)
}

func (s *State) Bookings() []models.Booking {
	return slices.Clone(s.bookings)
}

func (s *State) User(id int64) (models.User, bool) {
	i := indexOfUser(s.users, id)
	if i < 0 {
		return models.User{}, false
	}
	return s.users[i], true
}

func (s *State) Booking(id int64) (models.Booking, bool) {
	i := slices.IndexFunc(s.bookings, func(b models.Booking) bool { return b.ID == id })
	if i < 0 {
		return models.Booking{}, false
	}
	return s.bookings[i], true
}

func (s *State) emailTaken(email string) bool {
	return slices.ContainsFunc(s.users, func(u models.User) bool { return u.Email == email })
}

// SessionUserID is 0 when nobody is logged in.
func (s *State) SessionUserID() int64 { return s.sessionUserID }

func (s *State) SessionID() string { return s.sessionID }

// SelectedProviderID is 0 when no provider is selected.
func (s *State) SelectedProviderID() int64 { return s.selectedProviderID }

func indexOfUser(users []models.User, id int64) int {
	return slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
}
