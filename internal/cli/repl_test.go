package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/lawnbook/internal/models"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	r     models.Role
	calls []string
}

func (f *fakeExec) role() models.Role { return f.r }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) recordID(name string, id int64) error {
	f.calls = append(f.calls, fmt.Sprintf("%s %d", name, id))
	return nil
}

func (f *fakeExec) Signup(ctx context.Context) error { return f.record("signup") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.r = models.RoleCustomer
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.r = ""
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error       { return f.record("whoami") }
func (f *fakeExec) Profile(ctx context.Context) error      { return f.record("profile") }
func (f *fakeExec) Dashboard(ctx context.Context) error    { return f.record("dashboard") }
func (f *fakeExec) Providers(ctx context.Context) error    { return f.record("providers") }
func (f *fakeExec) Book(ctx context.Context) error         { return f.record("book") }
func (f *fakeExec) Bookings(ctx context.Context) error     { return f.record("bookings") }
func (f *fakeExec) Availability(ctx context.Context) error { return f.record("availability") }

func (f *fakeExec) Select(ctx context.Context, id int64) error   { return f.recordID("select", id) }
func (f *fakeExec) Complete(ctx context.Context, id int64) error { return f.recordID("complete", id) }
func (f *fakeExec) Approve(ctx context.Context, id int64) error  { return f.recordID("approve", id) }
func (f *fakeExec) Decline(ctx context.Context, id int64) error  { return f.recordID("decline", id) }
func (f *fakeExec) Toggle(ctx context.Context, id int64) error   { return f.recordID("toggle", id) }

func runScript(t *testing.T, exec execIface, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, reader, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec,
		"signup",
		"register",
		"login",
		"",
		"whoami",
		"profile",
		"d",
		"dashboard",
		"providers",
		"select 7",
		"book",
		"bookings",
		"complete 8",
		"availability",
		"approve 1",
		"decline 2",
		"toggle 3",
		"logout",
		"exit",
		"login",
	)

	assert.Equal(t, []string{
		"signup", "signup", "login", "whoami", "profile", "dashboard", "dashboard",
		"providers", "select 7", "book", "bookings", "complete 8", "availability",
		"approve 1", "decline 2", "toggle 3", "logout",
	}, exec.calls)
	assert.Contains(t, out, "lawnbook status> ")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_IDCommandsPrintUsage(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "select", "approve x", "complete 12abc", "exit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Usage: select <id>")
	assert.Contains(t, out, "Usage: approve <id>")
	assert.Contains(t, out, "Usage: complete <id>")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := runScript(t, &fakeExec{}, "foobar", "quit")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_StopsAtEndOfInput(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "whoami")
	assert.Equal(t, []string{"whoami"}, exec.calls)
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_HelpFollowsRole(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "help", "login", "help", "exit")

	assert.Contains(t, out, helpText(""))
	assert.Contains(t, out, helpText(models.RoleCustomer))
}

func TestHelpText(t *testing.T) {
	assert.Contains(t, helpText(models.RoleProvider), "complete <id>")
	assert.Contains(t, helpText(models.RoleAdmin), "approve <id>")
	assert.Contains(t, helpText(models.RoleCustomer), "select <id>")
	assert.Contains(t, helpText(""), "signup")
}

func TestParseID(t *testing.T) {
	id, ok := parseID([]string{"42", "extra"})
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = parseID(nil)
	assert.False(t, ok)

	_, ok = parseID([]string{"-x"})
	assert.False(t, ok)
}
