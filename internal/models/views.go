package models

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers       int
	Providers        int
	PendingApprovals int
	Bookings         int
}

// ProviderBooking is a provider's booking joined with the customer name.
// CustomerName is "Unknown" when the customer no longer exists.
type ProviderBooking struct {
	Booking
	CustomerName string
}

const UnknownCustomer = "Unknown"
