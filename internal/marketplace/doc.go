// Package marketplace is the data and state layer of LawnBook.
//
// A Controller owns the application State (users, bookings, the session
// and the customer's provider selection), applies the state-transition
// rules and persists every mutation through a Repository as whole
// collection snapshots. It has no rendering side effects: presentation
// layers read through the query methods and Subscribe to Events.
//
// Transition rules
//
//   - Provider approval: unapproved -> approved (admin, idempotent), or
//     provider -> removed (admin decline, hard delete; bookings referencing
//     the provider are kept as they are).
//   - Availability: approved providers toggle available/unavailable,
//     themselves or through an admin.
//   - Booking: Pending -> Completed by the booking's provider, once; the
//     provider's completed counter grows by exactly one.
//
// A Controller is meant to be driven by one caller at a time and is not
// safe for concurrent use.
package marketplace
