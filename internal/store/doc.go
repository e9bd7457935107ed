// Package store provides the flat key/value blob store that LawnBook keeps
// its collections in.
//
// # Overview
//
// Store is a tiny interface (Get/Set/SetMany/Delete/List) with three
// implementations selected by driver name through Open:
//
//   - "sqlite": SQLiteStore, a single kv table in a local SQLite file,
//     migrated with goose on open.
//   - "bolt":   BoltStore, one bbolt bucket in a local file.
//   - "memory": MemoryStore, a process-local map. Nothing survives exit.
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Values are opaque bytes; callers
// decide the encoding. SetMany writes all pairs or none. Open returns a nil
// Store whenever it returns an error. File paths for sqlite may be plain
// paths or "file:" URIs; missing parent directories are created for both.
//
// # Concurrency
//
// The application has a single writer. SQLiteStore and BoltStore are safe for
// concurrent use by virtue of their engines; MemoryStore is not.
//
// Typical usage:
//
//	st, err := store.Open(ctx, "sqlite", "lawnbook.db")
//	_ = st.Set(ctx, "users", payload)
//	raw, _ := st.Get(ctx, "users")
//	_ = st.Close()
package store
