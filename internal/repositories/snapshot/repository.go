package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lawnbook/internal/logging"
	"github.com/dmitrijs2005/lawnbook/internal/models"
	"github.com/dmitrijs2005/lawnbook/internal/store"
)

const (
	KeyUsers    = "users"
	KeyBookings = "bookings"
	KeySession  = "currentUser"
)

// Session is the persisted session reference.
type Session struct {
	UserID    int64     `json:"userId"`
	SessionID string    `json:"sessionId"`
	StartedAt time.Time `json:"startedAt"`
}

// Repository loads and saves the marketplace collections.
type Repository struct {
	store store.Store
	log   logging.Logger
}

func NewRepository(s store.Store, log logging.Logger) *Repository {
	return &Repository{store: s, log: log}
}

// Snapshot is everything the marketplace keeps in the store.
type Snapshot struct {
	Users    []models.User
	Bookings []models.Booking
	// Session is nil when nobody is logged in.
	Session *Session
}

// Load reads the whole store in one List call. Missing or malformed
// collections come back as empty slices; a malformed session as nil.
func (r *Repository) Load(ctx context.Context) (Snapshot, error) {
	raw, err := r.store.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	return Snapshot{
		Users:    decodeCollection[models.User](ctx, r, KeyUsers, raw[KeyUsers]),
		Bookings: decodeCollection[models.Booking](ctx, r, KeyBookings, raw[KeyBookings]),
		Session:  r.decodeSession(ctx, raw[KeySession]),
	}, nil
}

func (r *Repository) SaveUsers(ctx context.Context, users []models.User) error {
	return r.save(ctx, map[string]any{KeyUsers: nonNil(users)})
}

func (r *Repository) SaveBookings(ctx context.Context, bookings []models.Booking) error {
	return r.save(ctx, map[string]any{KeyBookings: nonNil(bookings)})
}

// SaveAll writes both collections in one store call.
func (r *Repository) SaveAll(ctx context.Context, users []models.User, bookings []models.Booking) error {
	return r.save(ctx, map[string]any{
		KeyUsers:    nonNil(users),
		KeyBookings: nonNil(bookings),
	})
}

func (r *Repository) SaveSession(ctx context.Context, s Session) error {
	return r.save(ctx, map[string]any{KeySession: s})
}

func (r *Repository) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func decodeCollection[T any](ctx context.Context, r *Repository, key string, raw []byte) []T {
	if raw == nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn(ctx, "treating malformed collection as empty", "key", key, "error", err)
		return []T{}
	}
	return nonNil(items)
}

func (r *Repository) decodeSession(ctx context.Context, raw []byte) *Session {
	if raw == nil {
		return nil
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || s.UserID == 0 {
		r.log.Warn(ctx, "ignoring malformed session", "key", KeySession)
		return nil
	}
	return &s
}

func (r *Repository) save(ctx context.Context, values map[string]any) error {
	payloads := make(map[string][]byte, len(values))
	for key, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		payloads[key] = b
	}

	if len(payloads) == 1 {
		for key, b := range payloads {
			if err := r.store.Set(ctx, key, b); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
		}
		return nil
	}

	if err := r.store.SetMany(ctx, payloads); err != nil {
		return fmt.Errorf("save collections: %w", err)
	}
	return nil
}

// nonNil keeps empty collections serialized as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
