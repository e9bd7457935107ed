package marketplace

import (
	"fmt"

	"github.com/dmitrijs2005/lawnbook/internal/common"
	"github.com/dmitrijs2005/lawnbook/internal/models"
)

// Stats computes the admin dashboard counters.
func (c *Controller) Stats() models.Stats {
	st := models.Stats{
		TotalUsers: len(c.state.users),
		Bookings:   len(c.state.bookings),
	}
	for _, u := range c.state.users {
		if !u.IsProvider() {
			continue
		}
		st.Providers++
		if !u.IsApproved {
			st.PendingApprovals++
		}
	}
	return st
}

// AvailableProviders lists the providers customers can book.
func (c *Controller) AvailableProviders() []models.User {
	return c.filterUsers(func(u models.User) bool { return u.Bookable() })
}

// UsersByRole lists users with the given role in stored order.
func (c *Controller) UsersByRole(role models.Role) []models.User {
	return c.filterUsers(func(u models.User) bool { return u.Role == role })
}

// ProviderBookings lists the bookings of a provider joined with the
// customer's name.
func (c *Controller) ProviderBookings(providerID int64) []models.ProviderBooking {
	out := []models.ProviderBooking{}
	for _, b := range c.state.bookings {
		if b.ProviderID != providerID {
			continue
		}
		name := models.UnknownCustomer
		if cu, ok := c.state.User(b.CustomerID); ok {
			name = cu.Name
		}
		out = append(out, models.ProviderBooking{Booking: b, CustomerName: name})
	}
	return out
}

// MyBookings lists the logged-in provider's bookings.
func (c *Controller) MyBookings() ([]models.ProviderBooking, error) {
	u, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !u.IsProvider() {
		return nil, fmt.Errorf("provider view: %w", common.ErrForbidden)
	}
	return c.ProviderBookings(u.ID), nil
}

func (c *Controller) filterUsers(keep func(models.User) bool) []models.User {
	out := []models.User{}
	for _, u := range c.state.users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
