package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) ShowAll(ctx context.Context) error {
	f.calls = append(f.calls, "all")
	return nil
}
func (f *fakeExec) ShowFavorites(ctx context.Context) error {
	f.calls = append(f.calls, "favorites")
	return nil
}
func (f *fakeExec) ShowOwnStories(ctx context.Context) error {
	f.calls = append(f.calls, "mine")
	return nil
}
func (f *fakeExec) Submit(ctx context.Context) error {
	f.calls = append(f.calls, "submit")
	return nil
}
func (f *fakeExec) Favorite(ctx context.Context, storyID string) error {
	f.calls = append(f.calls, "fav")
	f.arg = storyID
	return nil
}
func (f *fakeExec) Unfavorite(ctx context.Context, storyID string) error {
	f.calls = append(f.calls, "unfav")
	f.arg = storyID
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, storyID string) error {
	f.calls = append(f.calls, "delete")
	f.arg = storyID
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(io.Writer, ...any) {}
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"all",
		"favorites",
		"mine",
		"fav 42",
		"submit",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc, io.Discard)

	wantOrder := []string{"login", "all", "favorites", "mine", "fav", "submit"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "42" {
		t.Fatalf("fav arg mismatch: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("fav\nunfav\ndelete\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc, io.Discard)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc, io.Discard)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
