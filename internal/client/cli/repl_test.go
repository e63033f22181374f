package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	flushes  int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) SwitchTab(_ context.Context, name string) error {
	f.calls = append(f.calls, "tab:"+name)
	return nil
}
func (f *fakeExec) Classify(context.Context) error {
	f.calls = append(f.calls, "classify")
	return nil
}
func (f *fakeExec) Feedback(context.Context) error {
	f.calls = append(f.calls, "feedback")
	return nil
}
func (f *fakeExec) Upload(_ context.Context, path string) error {
	f.calls = append(f.calls, "upload:"+path)
	return nil
}
func (f *fakeExec) Retrain(context.Context) error {
	f.calls = append(f.calls, "retrain")
	return nil
}
func (f *fakeExec) Show(_ context.Context, id string) error {
	f.calls = append(f.calls, "show:"+id)
	return nil
}
func (f *fakeExec) Refresh(context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) flushNotifications() { f.flushes++ }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.ReplaceAll(toString(v), "\n", " "))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_LoggedOutOnlyAllowsAuth(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(logged out)" },
		input("help", "classify", "tab admin", "exit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, helpLoggedOut)
	assert.Contains(t, *out, "Log in first (type 'help' for commands)")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, input(
		"login",
		"",
		"tab emails",
		"t admin",
		"refresh",
		"classify",
		"feedback",
		"upload batch.json",
		"upload",
		"retrain",
		"show 12",
		"logout",
		"register",
		"quit",
	))

	assert.Equal(t, []string{
		"login", "tab:emails", "tab:admin", "refresh", "classify", "feedback",
		"upload:batch.json", "upload:", "retrain", "show:12", "logout", "register",
	}, exec.calls)
	assert.Equal(t, 12, exec.flushes)
}

func TestRunREPL_UsageErrorsMakeNoCalls(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, input("tab", "show", "login", "frobnicate"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: tab <dashboard|classify|emails|upload|admin>")
	assert.Contains(t, *out, "Usage: show <id>")
	assert.Contains(t, *out, "Already logged in; logout first")
	assert.Contains(t, *out, "Unknown command: frobnicate")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" },
		bufio.NewReader(strings.NewReader("retrain")))

	assert.Equal(t, []string{"retrain"}, exec.calls)
}
