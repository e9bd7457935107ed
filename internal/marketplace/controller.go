package marketplace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lawnbook/internal/common"
	"github.com/dmitrijs2005/lawnbook/internal/logging"
	"github.com/dmitrijs2005/lawnbook/internal/models"
	"github.com/dmitrijs2005/lawnbook/internal/repositories/snapshot"
	"github.com/google/uuid"
)

// Repository persists the marketplace collections and the session reference.
type Repository interface {
	Load(ctx context.Context) (snapshot.Snapshot, error)
	SaveUsers(ctx context.Context, users []models.User) error
	SaveBookings(ctx context.Context, bookings []models.Booking) error
	SaveAll(ctx context.Context, users []models.User, bookings []models.Booking) error
	SaveSession(ctx context.Context, s snapshot.Session) error
	ClearSession(ctx context.Context) error
}

// Controller applies marketplace operations to the State.
type Controller struct {
	repo  Repository
	log   logging.Logger
	state State
	ids   *idGenerator
	now   func() time.Time
	newID func() string

	subscribers []subscriber
	nextSubID   int
}

type Option func(*Controller)

// WithClock replaces time.Now, which drives id assignment and session
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithSessionIDs replaces the random session id source.
func WithSessionIDs(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

// NewController loads users, bookings and the stored session.
func NewController(ctx context.Context, repo Repository, log logging.Logger, opts ...Option) (*Controller, error) {
	c := &Controller{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(c)
	}
	c.ids = newIDGenerator(c.now)

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the in-memory state with what is stored and restores the
// session, dropping it when it points to a user that no longer exists.
func (c *Controller) Reload(ctx context.Context) error {
	snap, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}
	users, bookings, sess := snap.Users, snap.Bookings, snap.Session

	c.state = State{users: users, bookings: bookings}
	for _, u := range users {
		c.ids.observe(u.ID)
	}
	for _, b := range bookings {
		c.ids.observe(b.ID)
	}

	if sess == nil {
		return nil
	}
	if _, ok := c.state.User(sess.UserID); !ok {
		c.log.Warn(ctx, "dropping session of missing user", "user_id", sess.UserID)
		return c.repo.ClearSession(ctx)
	}

	c.state.sessionUserID = sess.UserID
	c.state.sessionID = sess.SessionID
	c.log.Debug(ctx, "session restored", "user_id", sess.UserID, "session_id", sess.SessionID)
	return nil
}

// State exposes the read accessors of the current state.
func (c *Controller) State() *State { return &c.state }

// CurrentUser returns the live record of the logged-in user.
func (c *Controller) CurrentUser() (models.User, error) {
	if c.state.sessionUserID == 0 {
		return models.User{}, common.ErrNotLoggedIn
	}
	u, ok := c.state.User(c.state.sessionUserID)
	if !ok {
		return models.User{}, common.ErrNotLoggedIn
	}
	return u, nil
}

func (c *Controller) requireRole(role models.Role) (models.User, error) {
	u, err := c.CurrentUser()
	if err != nil {
		return models.User{}, err
	}
	if u.Role != role {
		return models.User{}, fmt.Errorf("%s action: %w", role, common.ErrForbidden)
	}
	return u, nil
}

func (c *Controller) sessionLog() logging.Logger {
	return c.log.With("session_id", c.state.sessionID)
}

// SignupRequest carries the signup form.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Services string
}

// Signup registers a new user. The email must not be in use.
func (c *Controller) Signup(ctx context.Context, req SignupRequest) (models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	switch {
	case email == "":
		return models.User{}, fmt.Errorf("%w: email is required", common.ErrValidation)
	case req.Password == "":
		return models.User{}, fmt.Errorf("%w: password is required", common.ErrValidation)
	case !req.Role.Valid():
		return models.User{}, fmt.Errorf("%w: unknown role %q", common.ErrValidation, req.Role)
	}

	if c.state.emailTaken(email) {
		return models.User{}, common.ErrEmailTaken
	}

	u := models.NewUser(c.ids.next(), name, email, req.Password, req.Role, strings.TrimSpace(req.Services))
	users := append(c.state.Users(), u)
	if err := c.repo.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	c.state.users = users

	c.log.Info(ctx, "user signed up", "user_id", u.ID, "role", u.Role)
	c.publish(Event{Kind: EventSignedUp, UserID: u.ID})
	return u, nil
}

// Login starts a session for the user whose email and password match
// exactly.
func (c *Controller) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)

	var found *models.User
	for i := range c.state.users {
		if c.state.users[i].Email == email && c.state.users[i].Password == password {
			found = &c.state.users[i]
			break
		}
	}
	if found == nil {
		return models.User{}, common.ErrInvalidCredentials
	}

	sess := snapshot.Session{UserID: found.ID, SessionID: c.newID(), StartedAt: c.now().UTC()}
	if err := c.repo.SaveSession(ctx, sess); err != nil {
		return models.User{}, err
	}
	c.state.sessionUserID = sess.UserID
	c.state.sessionID = sess.SessionID
	c.state.selectedProviderID = 0

	c.sessionLog().Info(ctx, "user logged in", "user_id", found.ID)
	c.publish(Event{Kind: EventLoggedIn, UserID: found.ID})
	return *found, nil
}

// Logout ends the session. Logging out without a session is a no-op.
func (c *Controller) Logout(ctx context.Context) error {
	if c.state.sessionUserID == 0 {
		return nil
	}
	if err := c.repo.ClearSession(ctx); err != nil {
		return err
	}

	userID := c.state.sessionUserID
	c.sessionLog().Info(ctx, "user logged out", "user_id", userID)

	c.state.sessionUserID = 0
	c.state.sessionID = ""
	c.state.selectedProviderID = 0

	c.publish(Event{Kind: EventLoggedOut, UserID: userID})
	return nil
}

// ProfileUpdate carries the profile form. Password is only changed when
// non-empty; Services only applies to providers.
type ProfileUpdate struct {
	Name     string
	Email    string
	Services string
	Password string
}

// UpdateProfile edits the logged-in user. Email uniqueness is not checked
// here, only at signup.
func (c *Controller) UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.User, error) {
	u, err := c.CurrentUser()
	if err != nil {
		return models.User{}, err
	}

	name := strings.TrimSpace(upd.Name)
	email := strings.TrimSpace(upd.Email)
	if name == "" || email == "" {
		return models.User{}, fmt.Errorf("%w: name and email are required", common.ErrValidation)
	}

	u.Name = name
	u.Email = email
	if u.IsProvider() {
		u.Services = strings.TrimSpace(upd.Services)
	}
	if pw := strings.TrimSpace(upd.Password); pw != "" {
		u.Password = pw
	}

	users := c.state.Users()
	users[indexOfUser(users, u.ID)] = u
	if err := c.repo.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	c.state.users = users

	c.sessionLog().Info(ctx, "profile updated", "user_id", u.ID)
	c.publish(Event{Kind: EventProfileUpdated, UserID: u.ID})
	return u, nil
}

// ApproveProvider lets an admin approve a provider. Approving twice is a
// no-op.
func (c *Controller) ApproveProvider(ctx context.Context, providerID int64) error {
	if _, err := c.requireRole(models.RoleAdmin); err != nil {
		return err
	}

	users, changed, err := approveProvider(c.state.users, providerID)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := c.repo.SaveUsers(ctx, users); err != nil {
		return err
	}
	c.state.users = users

	c.sessionLog().Info(ctx, "provider approved", "provider_id", providerID)
	c.publish(Event{Kind: EventProviderApproved, UserID: providerID})
	return nil
}

// DeclineProvider lets an admin delete a provider account. Bookings that
// reference it stay as they are.
func (c *Controller) DeclineProvider(ctx context.Context, providerID int64) error {
	if _, err := c.requireRole(models.RoleAdmin); err != nil {
		return err
	}

	users, err := declineProvider(c.state.users, providerID)
	if err != nil {
		return err
	}
	if err := c.repo.SaveUsers(ctx, users); err != nil {
		return err
	}
	c.state.users = users
	if c.state.selectedProviderID == providerID {
		c.state.selectedProviderID = 0
	}

	c.sessionLog().Info(ctx, "provider declined", "provider_id", providerID)
	c.publish(Event{Kind: EventProviderDeclined, UserID: providerID})
	return nil
}

// ToggleProviderAvailability lets an admin flip an approved provider's
// availability. It returns the new value.
func (c *Controller) ToggleProviderAvailability(ctx context.Context, providerID int64) (bool, error) {
	if _, err := c.requireRole(models.RoleAdmin); err != nil {
		return false, err
	}
	return c.toggle(ctx, providerID)
}

// ToggleOwnAvailability lets an approved provider flip their own
// availability. It returns the new value.
func (c *Controller) ToggleOwnAvailability(ctx context.Context) (bool, error) {
	u, err := c.requireRole(models.RoleProvider)
	if err != nil {
		return false, err
	}
	return c.toggle(ctx, u.ID)
}

func (c *Controller) toggle(ctx context.Context, providerID int64) (bool, error) {
	users, available, err := toggleAvailability(c.state.users, providerID)
	if err != nil {
		return false, err
	}
	if err := c.repo.SaveUsers(ctx, users); err != nil {
		return false, err
	}
	c.state.users = users

	c.sessionLog().Info(ctx, "availability changed", "provider_id", providerID, "available", available)
	c.publish(Event{Kind: EventAvailabilityChange, UserID: providerID})
	return available, nil
}

// SelectProvider remembers the provider the customer wants to book. Only
// approved, available providers can be selected.
func (c *Controller) SelectProvider(ctx context.Context, providerID int64) error {
	if _, err := c.requireRole(models.RoleCustomer); err != nil {
		return err
	}

	p, ok := c.state.User(providerID)
	switch {
	case !ok:
		return fmt.Errorf("user %d: %w", providerID, common.ErrNotFound)
	case !p.IsProvider():
		return fmt.Errorf("user %d: %w", providerID, common.ErrNotProvider)
	case !p.IsApproved:
		return fmt.Errorf("user %d: %w", providerID, common.ErrNotApproved)
	case !p.IsAvailable:
		return fmt.Errorf("user %d: %w", providerID, common.ErrProviderUnavailable)
	}

	c.state.selectedProviderID = providerID
	c.publish(Event{Kind: EventProviderSelected, UserID: providerID})
	return nil
}

// BookingRequest carries the booking form.
type BookingRequest struct {
	Date        string
	Description string
}

// CreateBooking books the selected provider for the logged-in customer.
// The new booking is Pending. The selection is kept for further bookings.
func (c *Controller) CreateBooking(ctx context.Context, req BookingRequest) (models.Booking, error) {
	customer, err := c.requireRole(models.RoleCustomer)
	if err != nil {
		return models.Booking{}, err
	}
	if c.state.selectedProviderID == 0 {
		return models.Booking{}, common.ErrNoProviderSelected
	}
	if strings.TrimSpace(req.Date) == "" {
		return models.Booking{}, fmt.Errorf("%w: date is required", common.ErrValidation)
	}

	b := models.Booking{
		ID:          c.ids.next(),
		CustomerID:  customer.ID,
		ProviderID:  c.state.selectedProviderID,
		Date:        strings.TrimSpace(req.Date),
		Description: req.Description,
		Status:      models.BookingPending,
	}

	bookings := append(c.state.Bookings(), b)
	if err := c.repo.SaveBookings(ctx, bookings); err != nil {
		return models.Booking{}, err
	}
	c.state.bookings = bookings

	c.sessionLog().Info(ctx, "booking created", "booking_id", b.ID, "provider_id", b.ProviderID)
	c.publish(Event{Kind: EventBookingCreated, UserID: b.ProviderID, BookingID: b.ID})
	return b, nil
}

// CompleteBooking lets the booking's provider mark it Completed. Completing
// an already completed booking returns common.ErrAlreadyCompleted and
// changes nothing.
func (c *Controller) CompleteBooking(ctx context.Context, bookingID int64) (models.Booking, error) {
	provider, err := c.requireRole(models.RoleProvider)
	if err != nil {
		return models.Booking{}, err
	}

	users, bookings, err := completeBooking(c.state.users, c.state.bookings, bookingID, provider.ID)
	if err != nil {
		return models.Booking{}, err
	}
	if err := c.repo.SaveAll(ctx, users, bookings); err != nil {
		return models.Booking{}, err
	}
	c.state.users = users
	c.state.bookings = bookings

	b, _ := c.state.Booking(bookingID)
	c.sessionLog().Info(ctx, "booking completed", "booking_id", bookingID, "provider_id", provider.ID)
	c.publish(Event{Kind: EventBookingCompleted, UserID: provider.ID, BookingID: bookingID})
	return b, nil
}
