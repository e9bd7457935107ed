package cli

import (
	"context"

	"github.com/dmitrijs2005/lawnbook/internal/common"
	"github.com/dmitrijs2005/lawnbook/internal/marketplace"
)

// Providers lists the providers a customer can book.
func (a *App) Providers(ctx context.Context) error {
	providers := a.ctrl.AvailableProviders()
	if len(providers) == 0 {
		a.println("No available providers at the moment.")
		return nil
	}

	tw := a.table("ID", "NAME", "SERVICES", "COMPLETED", "RATING")
	for _, p := range providers {
		row(tw, p.ID, p.Name, orNA(p.Services), p.CompletedBookings, p.Rating)
	}
	return tw.Flush()
}

func (a *App) Select(ctx context.Context, id int64) error {
	if err := a.ctrl.SelectProvider(ctx, id); err != nil {
		return a.alert(ctx, err)
	}
	return nil
}

func (a *App) Book(ctx context.Context) error {
	u, err := a.ctrl.CurrentUser()
	if err != nil {
		return a.alert(ctx, err)
	}
	if !u.IsCustomer() {
		return a.alert(ctx, common.ErrForbidden)
	}
	if a.ctrl.State().SelectedProviderID() == 0 {
		return a.alert(ctx, common.ErrNoProviderSelected)
	}

	var req marketplace.BookingRequest
	if req.Date, err = GetSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if req.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}

	if _, err := a.ctrl.CreateBooking(ctx, req); err != nil {
		return a.alert(ctx, err)
	}
	return nil
}
