package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lawnbook/internal/models"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	role() models.Role

	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error

	Providers(ctx context.Context) error
	Select(ctx context.Context, id int64) error
	Book(ctx context.Context) error

	Bookings(ctx context.Context) error
	Complete(ctx context.Context, id int64) error
	Availability(ctx context.Context) error

	Approve(ctx context.Context, id int64) error
	Decline(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64) error
}

func helpText(r models.Role) string {
	switch r {
	case models.RoleCustomer:
		return "Available commands: dashboard, providers, select <id>, book, profile, whoami, logout, exit"
	case models.RoleProvider:
		return "Available commands: dashboard, bookings, complete <id>, availability, profile, whoami, logout, exit"
	case models.RoleAdmin:
		return "Available commands: dashboard, approve <id>, decline <id>, toggle <id>, profile, whoami, logout, exit"
	default:
		return "Available commands: signup, login, exit"
	}
}

// runREPL reads one command per line and dispatches it to a. It returns on
// end of input or on "exit" / "quit".
//
// Commands that take an id ("select", "complete", "approve", "decline",
// "toggle") print their usage when the id is missing or not a number.
// Errors returned by handlers are ignored here; handlers report them to
// the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	withID := map[string]func(context.Context, int64) error{
		"select":   a.Select,
		"complete": a.Complete,
		"approve":  a.Approve,
		"decline":  a.Decline,
		"toggle":   a.Toggle,
	}

	for {
		fmt.Fprintf(w, "lawnbook %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if fn, ok := withID[cmd]; ok {
			id, ok := parseID(args)
			if !ok {
				fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
				continue
			}
			_ = fn(ctx, id)
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText(a.role()))
		case "signup", "register":
			_ = a.Signup(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "dashboard", "d":
			_ = a.Dashboard(ctx)
		case "providers":
			_ = a.Providers(ctx)
		case "book":
			_ = a.Book(ctx)
		case "bookings":
			_ = a.Bookings(ctx)
		case "availability":
			_ = a.Availability(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
