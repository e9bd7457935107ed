package marketplace

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/lawnbook/internal/common"
	"github.com/dmitrijs2005/lawnbook/internal/models"
)

// The functions below never modify their inputs; they return new slices
// ready to be persisted.

func findProvider(users []models.User, id int64) (int, error) {
	i := indexOfUser(users, id)
	if i < 0 {
		return -1, fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}
	if !users[i].IsProvider() {
		return -1, fmt.Errorf("user %d: %w", id, common.ErrNotProvider)
	}
	return i, nil
}

// approveProvider marks the provider approved. changed is false when it
// already was.
func approveProvider(users []models.User, id int64) (out []models.User, changed bool, err error) {
	i, err := findProvider(users, id)
	if err != nil {
		return nil, false, err
	}
	if users[i].IsApproved {
		return users, false, nil
	}
	out = slices.Clone(users)
	out[i].IsApproved = true
	return out, true, nil
}

// declineProvider removes the provider. Bookings are not touched.
func declineProvider(users []models.User, id int64) ([]models.User, error) {
	i, err := findProvider(users, id)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(users)
	return slices.Delete(out, i, i+1), nil
}

// toggleAvailability flips the availability of an approved provider.
func toggleAvailability(users []models.User, id int64) ([]models.User, bool, error) {
	i, err := findProvider(users, id)
	if err != nil {
		return nil, false, err
	}
	if !users[i].IsApproved {
		return nil, false, fmt.Errorf("user %d: %w", id, common.ErrNotApproved)
	}
	out := slices.Clone(users)
	out[i].IsAvailable = !out[i].IsAvailable
	return out, out[i].IsAvailable, nil
}

// completeBooking moves the booking to Completed on behalf of providerID and
// bumps that provider's counter by one.
func completeBooking(users []models.User, bookings []models.Booking, bookingID, providerID int64) ([]models.User, []models.Booking, error) {
	bi := slices.IndexFunc(bookings, func(b models.Booking) bool { return b.ID == bookingID })
	if bi < 0 {
		return nil, nil, fmt.Errorf("booking %d: %w", bookingID, common.ErrNotFound)
	}
	if bookings[bi].ProviderID != providerID {
		return nil, nil, fmt.Errorf("booking %d: %w", bookingID, common.ErrForbidden)
	}
	if bookings[bi].IsCompleted() {
		return nil, nil, fmt.Errorf("booking %d: %w", bookingID, common.ErrAlreadyCompleted)
	}

	pi, err := findProvider(users, providerID)
	if err != nil {
		return nil, nil, err
	}

	outBookings := slices.Clone(bookings)
	outBookings[bi].Status = models.BookingCompleted

	outUsers := slices.Clone(users)
	outUsers[pi].CompletedBookings++

	return outUsers, outBookings, nil
}
