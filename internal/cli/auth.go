package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lawnbook/internal/common"
	"github.com/dmitrijs2005/lawnbook/internal/marketplace"
	"github.com/dmitrijs2005/lawnbook/internal/models"
)

func (a *App) Signup(ctx context.Context) error {
	var req marketplace.SignupRequest
	var err error

	if req.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Password, err = GetPassword(a.reader, "Password", a.out); err != nil {
		return err
	}

	roleText, err := GetSimpleText(a.reader, "Role (customer, provider, admin)", a.out)
	if err != nil {
		return err
	}
	role, ok := models.ParseRole(roleText)
	if !ok {
		return a.alert(ctx, fmt.Errorf("%w: unknown role %q", common.ErrValidation, roleText))
	}
	req.Role = role

	if role == models.RoleProvider {
		if req.Services, err = GetSimpleText(a.reader, "Services offered", a.out); err != nil {
			return err
		}
	}

	if _, err := a.ctrl.Signup(ctx, req); err != nil {
		return a.alert(ctx, err)
	}
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	u, err := a.ctrl.Login(ctx, email, password)
	if err != nil {
		return a.alert(ctx, err)
	}

	a.printf("Logged in as %s.\n", u.Name)
	return a.Dashboard(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.ctrl.Logout(ctx); err != nil {
		return a.alert(ctx, err)
	}
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.ctrl.CurrentUser()
	if err != nil {
		return a.alert(ctx, err)
	}
	a.printf("%s <%s>, %s\n", u.Name, u.Email, roleLabel(u.Role))
	return nil
}

// clearValue entered at the services prompt empties the field.
const clearValue = "-"

// Profile edits the current user. Empty answers keep the current value;
// an empty password keeps the current password.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.ctrl.CurrentUser()
	if err != nil {
		return a.alert(ctx, err)
	}

	upd := marketplace.ProfileUpdate{Name: u.Name, Email: u.Email, Services: u.Services}

	if upd.Name, err = a.askDefault("Name", u.Name); err != nil {
		return err
	}
	if upd.Email, err = a.askDefault("Email", u.Email); err != nil {
		return err
	}
	if u.IsProvider() {
		services, err := a.askDefault("Services offered ('-' to clear)", u.Services)
		if err != nil {
			return err
		}
		if services == clearValue {
			services = ""
		}
		upd.Services = services
	}
	if upd.Password, err = GetPassword(a.reader, "New password (empty to keep)", a.out); err != nil {
		return err
	}

	if _, err := a.ctrl.UpdateProfile(ctx, upd); err != nil {
		return a.alert(ctx, err)
	}
	a.println("Profile updated.")
	return a.Dashboard(ctx)
}

func (a *App) askDefault(prompt, current string) (string, error) {
	v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", prompt, current), a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}
