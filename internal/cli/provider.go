package cli

import "context"

func (a *App) Bookings(ctx context.Context) error {
	bookings, err := a.ctrl.MyBookings()
	if err != nil {
		return a.alert(ctx, err)
	}
	if len(bookings) == 0 {
		a.println("No bookings yet.")
		return nil
	}

	tw := a.table("ID", "CUSTOMER", "DATE", "STATUS", "DESCRIPTION")
	for _, b := range bookings {
		row(tw, b.ID, b.CustomerName, b.Date, b.Status, b.Description)
	}
	return tw.Flush()
}

func (a *App) Complete(ctx context.Context, id int64) error {
	b, err := a.ctrl.CompleteBooking(ctx, id)
	if err != nil {
		return a.alert(ctx, err)
	}
	a.printf("Booking %d marked %s.\n", b.ID, b.Status)
	return nil
}

func (a *App) Availability(ctx context.Context) error {
	available, err := a.ctrl.ToggleOwnAvailability(ctx)
	if err != nil {
		return a.alert(ctx, err)
	}
	a.println("You are now", availabilityLabel(available)+".")
	return nil
}
