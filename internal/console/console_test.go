package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Joo200/piston/internal/commands"
	"github.com/Joo200/piston/pkg/cmd"
)

func runScript(t *testing.T, script string) string {
	t.Helper()

	m := cmd.NewManager()
	if err := commands.Register(commands.Deps{Manager: m}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	var out bytes.Buffer
	c := &Console{Manager: m, In: strings.NewReader(script), Out: &out}
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestConsole_DispatchPrintsThroughHost(t *testing.T) {
	out := runScript(t, "echo hello world\nexit\n")
	if !strings.Contains(out, "hello world") {
		t.Errorf("output missing echoed text:\n%s", out)
	}
}

func TestConsole_UsageErrorShowsSynopsis(t *testing.T) {
	out := runScript(t, "echo -x\nquit\n")
	if !strings.Contains(out, "usage: echo") {
		t.Errorf("output missing usage line:\n%s", out)
	}
}

func TestConsole_UnknownCommand(t *testing.T) {
	out := runScript(t, "frobnicate\nexit\n")
	if !strings.Contains(out, "frobnicate") {
		t.Errorf("output should name the unknown command:\n%s", out)
	}
}

func TestConsole_CompletionQuery(t *testing.T) {
	out := runScript(t, "ec?\nexit\n")
	if !strings.Contains(out, "echo") {
		t.Errorf("expected echo among completions:\n%s", out)
	}
}

func TestConsole_BlankLinesIgnored(t *testing.T) {
	out := runScript(t, "\n\nexit\n")
	if strings.Contains(out, "error") {
		t.Errorf("blank lines should not dispatch:\n%s", out)
	}
}

func TestConsole_EOFEndsLoop(t *testing.T) {
	// No exit line; the reader simply runs dry.
	out := runScript(t, "echo done\n")
	if !strings.Contains(out, "done") {
		t.Errorf("dispatch before EOF should still run:\n%s", out)
	}
}
