package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillboard/internal/client/client"
	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return f.err
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return f.err
}
func (f *fakeExec) List(ctx context.Context, skill string) error {
	f.calls = append(f.calls, "list:"+skill)
	return f.err
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show:"+id)
	return f.err
}
func (f *fakeExec) Me(ctx context.Context) error { f.calls = append(f.calls, "me"); return f.err }
func (f *fakeExec) Edit(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return f.err
}
func (f *fakeExec) AddSkill(ctx context.Context) error {
	f.calls = append(f.calls, "addskill")
	return f.err
}
func (f *fakeExec) Avatar(ctx context.Context, path string) error {
	f.calls = append(f.calls, "avatar:"+path)
	return f.err
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return f.err
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(a ...any) (int, error) {
		*lines = append(*lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_GuestThenMember(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input(
		"help",
		"me",
		"list",
		"l React  Native",
		"show 2",
		"show",
		"login",
		"help",
		"me",
		"edit",
		"addskill",
		"avatar /tmp/my photo.png",
		"logout",
		"foobar",
		"",
		"exit",
		"list",
	))

	require.Equal(t, []string{
		"list:", "list:React Native", "show:2",
		"login", "me", "edit", "addskill", "avatar:/tmp/my photo.png", "logout",
	}, exec.calls)

	require.Contains(t, *out, helpGuest)
	require.Contains(t, *out, helpMember)
	require.Contains(t, *out, "Please register or login first")
	require.Contains(t, *out, "Usage: show <id>")
	require.Contains(t, *out, "Unknown command: foobar")
	require.Contains(t, *out, "sb> status > ")
	require.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, input("show 1"))

	require.Equal(t, []string{"show:1"}, exec.calls)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: fmt.Errorf("login: %w", common.ErrInvalidCredentials)}
	runREPL(context.Background(), exec, func() string { return "" }, input("login", "quit"))

	require.Contains(t, *out, "Error: invalid email or password")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrDuplicateAccount, "an account with this email already exists"},
		{common.ErrInvalidCredentials, "invalid email or password"},
		{client.ErrUnauthorized, "session is no longer valid, please login again"},
		{common.ErrProfileNotFound, "profile not found"},
		{common.ErrStorageNotConfigured, "avatar uploads are not enabled on this server"},
		{client.ErrUnavailable, "server unavailable, try again later"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, describe(tt.err))
	}
}
