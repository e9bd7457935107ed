package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/lawnbook/internal/common"
)

var alerts = []struct {
	err error
	msg string
}{
	{common.ErrEmailTaken, "Email already registered."},
	{common.ErrInvalidCredentials, "Invalid credentials."},
	{common.ErrNoProviderSelected, "Please select a provider."},
	{common.ErrNotLoggedIn, "Please log in first."},
	{common.ErrForbidden, "This action is not available for your role."},
	{common.ErrNotFound, "Not found."},
	{common.ErrNotProvider, "That user is not a provider."},
	{common.ErrNotApproved, "The provider is pending admin approval."},
	{common.ErrProviderUnavailable, "The provider is not available."},
	{common.ErrAlreadyCompleted, "The booking is already completed."},
}

// alert reports err to the user and returns it. Validation errors carry
// their own detail; anything unknown is logged as well.
func (a *App) alert(ctx context.Context, err error) error {
	for _, al := range alerts {
		if errors.Is(err, al.err) {
			a.println(al.msg)
			return err
		}
	}
	if errors.Is(err, common.ErrValidation) {
		a.println(err.Error())
		return err
	}
	a.log.Error(ctx, "command failed", "error", err)
	a.println("Something went wrong:", err.Error())
	return err
}
