package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"catalog", "show", "random", "combine", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if got := c.Logger.GetLevel(); got != log.InfoLevel {
		t.Fatalf("initial level = %v, want info", got)
	}
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level after SetLogLevel = %v, want debug", got)
	}
}

func TestResolveTheme_EmptyPath(t *testing.T) {
	th, err := resolveTheme("")
	if err != nil {
		t.Fatalf("resolveTheme(\"\") error: %v", err)
	}
	if err := th.validate(); err != nil {
		t.Errorf("default theme invalid: %v", err)
	}
}
