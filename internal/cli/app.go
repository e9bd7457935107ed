package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lawnbook/internal/config"
	"github.com/dmitrijs2005/lawnbook/internal/logging"
	"github.com/dmitrijs2005/lawnbook/internal/marketplace"
	"github.com/dmitrijs2005/lawnbook/internal/models"
	"github.com/dmitrijs2005/lawnbook/internal/repositories/snapshot"
	"github.com/dmitrijs2005/lawnbook/internal/store"
)

type App struct {
	ctrl   *marketplace.Controller
	store  store.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the configured store and loads the marketplace from it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	st, err := store.Open(ctx, cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}

	repo := snapshot.NewRepository(st, log)
	ctrl, err := marketplace.NewController(ctx, repo, log)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("error loading marketplace: %w", err)
	}

	log.Info(ctx, "store opened", "driver", cfg.StoreDriver, "path", cfg.StorePath)

	app := newApp(ctrl, log, in, out)
	app.store = st
	return app, nil
}

func newApp(ctrl *marketplace.Controller, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{ctrl: ctrl, log: log, reader: bufio.NewReader(in), out: out}
	ctrl.Subscribe(a.notify)
	return a
}

// Run shows the dashboard of a restored session, then runs the REPL until
// exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to LawnBook (type 'help' for commands)")
	if a.isLoggedIn() {
		_ = a.Dashboard(ctx)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Close releases the store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	_, err := a.ctrl.CurrentUser()
	return err == nil
}

func (a *App) role() models.Role {
	u, err := a.ctrl.CurrentUser()
	if err != nil {
		return ""
	}
	return u.Role
}

func (a *App) status() string {
	u, err := a.ctrl.CurrentUser()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, roleLabel(u.Role))
}

// notify prints notices for successful signups, selections and bookings.
func (a *App) notify(e marketplace.Event) {
	switch e.Kind {
	case marketplace.EventSignedUp:
		a.println("Signup successful. Please log in.")
	case marketplace.EventProviderSelected:
		a.println("Provider selected.")
	case marketplace.EventBookingCreated:
		a.println("Booking submitted! The provider will be in touch.")
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func roleLabel(r models.Role) string {
	if r == models.RoleProvider {
		return "provider"
	}
	return string(r)
}
