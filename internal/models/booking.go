package models

// BookingStatus is the lifecycle state of a booking. The only transition is
// Pending -> Completed.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingCompleted BookingStatus = "Completed"
)

// Booking links one customer to one provider.
type Booking struct {
	ID          int64         `json:"id"`
	CustomerID  int64         `json:"customerId"`
	ProviderID  int64         `json:"providerId"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Status      BookingStatus `json:"status"`
}

func (b *Booking) IsCompleted() bool { return b.Status == BookingCompleted }
