package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/lawnbook/internal/logging"
	"github.com/dmitrijs2005/lawnbook/internal/models"
	"github.com/dmitrijs2005/lawnbook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every call with err.
type failingStore struct {
	store.Store
	err error
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, f.err }
func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return f.err
}
func (f *failingStore) SetMany(ctx context.Context, values map[string][]byte) error {
	return f.err
}
func (f *failingStore) Delete(ctx context.Context, key string) error { return f.err }
func (f *failingStore) List(ctx context.Context) (map[string][]byte, error) {
	return nil, f.err
}

func newRepo(t *testing.T) (*Repository, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewRepository(st, logging.Discard()), st
}

func TestLoad_MissingKeysYieldEmpty(t *testing.T) {
	r, _ := newRepo(t)

	snap, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Users)
	assert.Empty(t, snap.Users)
	assert.NotNil(t, snap.Bookings)
	assert.Empty(t, snap.Bookings)
	assert.Nil(t, snap.Session)
}

func TestLoad_MalformedYieldsEmpty(t *testing.T) {
	r, st := newRepo(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeyUsers, []byte(`{not json`)))
	require.NoError(t, st.Set(ctx, KeyBookings, []byte(`[{"id":1},{"id":"oops"}]`)))
	require.NoError(t, st.Set(ctx, KeySession, []byte(`"x"`)))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Bookings, "partially decoded arrays must not leak")
	assert.Nil(t, snap.Session)
}

func TestLoad_NullYieldsEmptySlice(t *testing.T) {
	r, st := newRepo(t)
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, KeyUsers, []byte(`null`)))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, snap.Users)
	assert.Empty(t, snap.Users)
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	r, st := newRepo(t)
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "theme", []byte(`"dark"`)))
	require.NoError(t, r.SaveUsers(ctx, []models.User{models.NewUser(1, "Ada", "a@x.com", "pw", models.RoleAdmin, "")}))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "Ada", snap.Users[0].Name)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	r, st := newRepo(t)
	ctx := context.Background()

	users := []models.User{
		models.NewUser(1, "Alice", "a@x.com", "pw", models.RoleProvider, "mowing"),
		models.NewUser(2, "Carl", "c@x.com", "pw", models.RoleCustomer, ""),
	}
	bookings := []models.Booking{{ID: 3, CustomerID: 2, ProviderID: 1, Date: "2024-06-01", Status: models.BookingPending}}

	require.NoError(t, r.SaveAll(ctx, users, bookings))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, snap.Users)
	assert.Equal(t, bookings, snap.Bookings)

	raw, err := st.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"isApproved":false`)
}

func TestSaveUsers_NilWritesEmptyArray(t *testing.T) {
	r, st := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveUsers(ctx, nil))
	require.NoError(t, r.SaveBookings(ctx, nil))

	raw, err := st.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	raw, err = st.Get(ctx, KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestSession_SaveLoadClear(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.SaveSession(ctx, Session{UserID: 42, SessionID: "sid", StartedAt: started}))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	s := snap.Session
	require.NotNil(t, s)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, "sid", s.SessionID)
	assert.True(t, started.Equal(s.StartedAt))

	require.NoError(t, r.ClearSession(ctx))
	snap, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap.Session)
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := NewRepository(&failingStore{err: boom}, logging.Discard())
	ctx := context.Background()

	_, err := r.Load(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "load snapshot")

	require.ErrorIs(t, r.SaveBookings(ctx, nil), boom)
	require.ErrorIs(t, r.SaveAll(ctx, nil, nil), boom)
	require.ErrorIs(t, r.ClearSession(ctx), boom)
}
