package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/lawnbook/internal/models"
)

// Dashboard renders the view of the current user's role.
func (a *App) Dashboard(ctx context.Context) error {
	u, err := a.ctrl.CurrentUser()
	if err != nil {
		return a.alert(ctx, err)
	}

	switch u.Role {
	case models.RoleCustomer:
		a.println("== Book a provider ==")
		return a.Providers(ctx)
	case models.RoleProvider:
		return a.providerDashboard(ctx, u)
	case models.RoleAdmin:
		return a.adminDashboard()
	}
	return nil
}

func (a *App) providerDashboard(ctx context.Context, u models.User) error {
	a.println("== Provider dashboard ==")
	if !u.IsApproved {
		a.println("Your account is pending admin approval.")
	} else {
		a.println("You are", availabilityLabel(u.IsAvailable)+".", "Use 'availability' to switch.")
	}
	a.printf("Completed bookings: %d\n", u.CompletedBookings)
	return a.Bookings(ctx)
}

func (a *App) adminDashboard() error {
	st := a.ctrl.Stats()
	a.println("== Admin dashboard ==")
	a.printf("Users: %d  Providers: %d  Pending approvals: %d  Bookings: %d\n",
		st.TotalUsers, st.Providers, st.PendingApprovals, st.Bookings)

	a.println("\nProviders")
	tw := a.table("ID", "NAME", "SERVICES", "APPROVAL", "AVAILABILITY")
	for _, p := range a.ctrl.UsersByRole(models.RoleProvider) {
		approval := "Pending"
		if p.IsApproved {
			approval = "Approved"
		}
		row(tw, p.ID, p.Name, orNA(p.Services), approval, availabilityTitle(p.IsAvailable))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, group := range []struct {
		title string
		role  models.Role
	}{{"Customers", models.RoleCustomer}, {"Admins", models.RoleAdmin}} {
		a.println("\n" + group.title)
		tw := a.table("ID", "NAME", "EMAIL")
		for _, u := range a.ctrl.UsersByRole(group.role) {
			row(tw, u.ID, u.Name, u.Email)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) table(headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func availabilityTitle(available bool) string {
	if available {
		return "Available"
	}
	return "Unavailable"
}

func availabilityLabel(available bool) string {
	if available {
		return "available"
	}
	return "unavailable"
}
