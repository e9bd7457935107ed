// Package cli provides the interactive LawnBook terminal client.
//
// It is the presentation layer over internal/marketplace: it wires
// configuration, the key/value store and the controller, reads commands in
// a REPL, collects form input and turns errors into user-facing messages.
// State-change notices ("Provider selected.", "Booking submitted!") are
// printed from a controller subscription rather than by the commands.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command set.
package cli
