// Package snapshot persists the marketplace collections as whole-collection
// JSON snapshots in a store.Store.
//
// Keys
//
//   - "users":       JSON array of models.User
//   - "bookings":    JSON array of models.Booking
//   - "currentUser": JSON Session (a reference to a user, not a copy)
//
// Every save overwrites the full value of its key. Loading a missing or
// malformed value yields an empty collection; malformed data is logged and
// otherwise ignored.
package snapshot
