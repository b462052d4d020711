package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Analyze(ctx context.Context, path string) error {
	f.calls = append(f.calls, "analyze")
	f.arg = path
	return nil
}
func (f *fakeExec) Latest(ctx context.Context) error {
	f.calls = append(f.calls, "latest")
	return nil
}
func (f *fakeExec) History(ctx context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Recommendations(ctx context.Context, generate bool) error {
	if generate {
		f.calls = append(f.calls, "recs-new")
	} else {
		f.calls = append(f.calls, "recs")
	}
	return nil
}
func (f *fakeExec) Summary(ctx context.Context) error {
	f.calls = append(f.calls, "summary")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"analyze eye.png",
		"latest",
		"history",
		"stats",
		"recs",
		"recs new",
		"summary",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "analyze", "latest", "history", "stats", "recs", "recs-new", "summary"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	for i, want := range wantOrder {
		if exec.calls[i] != want {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, exec.calls[i], want, exec.calls)
		}
	}
	if exec.arg != "eye.png" {
		t.Fatalf("analyze arg = %q, want eye.png", exec.arg)
	}
}

func TestRunREPL_GuardsProtectedCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"analyze eye.png",
		"history",
		"stats",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("protected commands dispatched while logged out: %+v", exec.calls)
	}
}

func TestRunREPL_AnalyzeWithoutArgument(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("login\nanalyze\nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	for _, c := range exec.calls {
		if c == "analyze" {
			t.Fatal("analyze dispatched without a file argument")
		}
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
}
