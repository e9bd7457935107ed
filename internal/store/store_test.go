package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factory func(t *testing.T) Store

func backends() map[string]factory {
	return map[string]factory{
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(context.Background(), ":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		"bolt": func(t *testing.T) Store {
			s, err := OpenBolt(filepath.Join(t.TempDir(), "kv.bolt"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
	}
}

func TestStore_Contract(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("get missing returns nil nil", func(t *testing.T) {
				s := open(t)
				v, err := s.Get(ctx, "absent")
				require.NoError(t, err)
				require.Nil(t, v)
			})

			t.Run("set then get", func(t *testing.T) {
				s := open(t)
				require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
				v, err := s.Get(ctx, "users")
				require.NoError(t, err)
				require.Equal(t, []byte(`[]`), v)
			})

			t.Run("set overwrites", func(t *testing.T) {
				s := open(t)
				require.NoError(t, s.Set(ctx, "k", []byte("old")))
				require.NoError(t, s.Set(ctx, "k", []byte("new")))
				v, err := s.Get(ctx, "k")
				require.NoError(t, err)
				require.Equal(t, []byte("new"), v)
			})

			t.Run("set many writes all pairs", func(t *testing.T) {
				s := open(t)
				require.NoError(t, s.SetMany(ctx, map[string][]byte{
					"users":    []byte(`[1]`),
					"bookings": []byte(`[2]`),
				}))
				m, err := s.List(ctx)
				require.NoError(t, err)
				assert.Equal(t, map[string][]byte{
					"users":    []byte(`[1]`),
					"bookings": []byte(`[2]`),
				}, m)
			})

			t.Run("delete is idempotent", func(t *testing.T) {
				s := open(t)
				require.NoError(t, s.Set(ctx, "x", []byte{1}))
				require.NoError(t, s.Delete(ctx, "x"))
				v, err := s.Get(ctx, "x")
				require.NoError(t, err)
				require.Nil(t, v)
				require.NoError(t, s.Delete(ctx, "x"))
			})

			t.Run("list on empty store", func(t *testing.T) {
				s := open(t)
				m, err := s.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, m)
			})

			t.Run("returned values are copies", func(t *testing.T) {
				s := open(t)
				require.NoError(t, s.Set(ctx, "k", []byte("abc")))
				v, err := s.Get(ctx, "k")
				require.NoError(t, err)
				v[0] = 'z'
				again, err := s.Get(ctx, "k")
				require.NoError(t, err)
				require.Equal(t, []byte("abc"), again)
			})
		})
	}
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, "sqlite", filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, "BOLT", filepath.Join(dir, "a.bolt"))
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, "memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = Open(ctx, "redis", "x")
	require.ErrorContains(t, err, `unknown store driver "redis"`)
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, driver := range []string{DriverSQLite, DriverBolt} {
		s, err := Open(ctx, driver, filepath.Join(dir, driver, "data", "lawnbook.db"))
		require.NoError(t, err, driver)
		require.NoError(t, s.Set(ctx, "k", []byte("v")))
		require.NoError(t, s.Close())
	}

	uri := "file:" + filepath.Join(dir, "uri", "nested", "lawnbook.db") + "?_pragma=busy_timeout(1000)"
	s, err := Open(ctx, DriverSQLite, uri)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, filepath.Join(dir, "uri", "nested", "lawnbook.db"))
}

func TestSQLiteFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: ":memory:", want: ""},
		{dsn: "file::memory:", want: ""},
		{dsn: "file:shared?mode=memory&cache=shared", want: ""},
		{dsn: "data/lawnbook.db", want: "data/lawnbook.db"},
		{dsn: "file:/var/lib/lb.db", want: "/var/lib/lb.db"},
		{dsn: "file:data/lb.db?_pragma=foreign_keys(1)", want: "data/lb.db"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteFilePath(tt.dsn))
		})
	}
}

func TestOpen_NilStoreOnError(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cases := []struct {
		name, driver, path string
	}{
		{"sqlite blank path", DriverSQLite, "  "},
		{"bolt blank path", DriverBolt, ""},
		{"sqlite parent is a file", DriverSQLite, filepath.Join(blocker, "sub", "lb.db")},
		{"bolt parent is a file", DriverBolt, filepath.Join(blocker, "sub", "lb.bolt")},
		{"unknown driver", "redis", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(ctx, tc.driver, tc.path)
			require.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), " ")
	require.Error(t, err)

	_, err = OpenBolt("")
	require.Error(t, err)
}

func TestFileBackends_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, driver := range []string{DriverSQLite, DriverBolt} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(dir, "persist."+driver)

			s, err := Open(ctx, driver, path)
			require.NoError(t, err)
			require.NoError(t, s.Set(ctx, "bookings", []byte(`[{"id":1}]`)))
			require.NoError(t, s.Close())

			s, err = Open(ctx, driver, path)
			require.NoError(t, err)
			defer s.Close()

			v, err := s.Get(ctx, "bookings")
			require.NoError(t, err)
			require.Equal(t, []byte(`[{"id":1}]`), v)
		})
	}
}

func TestMemoryStore_HonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	require.ErrorIs(t, s.Set(ctx, "k", nil), context.Canceled)
	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}
