package cli

import "context"

func (a *App) Approve(ctx context.Context, id int64) error {
	if err := a.ctrl.ApproveProvider(ctx, id); err != nil {
		return a.alert(ctx, err)
	}
	a.printf("Provider %d approved.\n", id)
	return nil
}

func (a *App) Decline(ctx context.Context, id int64) error {
	if err := a.ctrl.DeclineProvider(ctx, id); err != nil {
		return a.alert(ctx, err)
	}
	a.printf("Provider %d declined and removed.\n", id)
	return nil
}

func (a *App) Toggle(ctx context.Context, id int64) error {
	available, err := a.ctrl.ToggleProviderAvailability(ctx, id)
	if err != nil {
		return a.alert(ctx, err)
	}
	a.printf("Provider %d is now %s.\n", id, availabilityLabel(available))
	return nil
}
