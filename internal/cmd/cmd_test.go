package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "head" {
			found = true
		}
	}
	if !found {
		t.Error("head command not registered")
	}

	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("config flag not registered")
	}
}

func TestHeadCommand(t *testing.T) {
	var buf bytes.Buffer
	headCmd.SetOut(&buf)
	t.Cleanup(func() { headCmd.SetOut(nil) })

	if err := headCmd.RunE(headCmd, nil); err != nil {
		t.Fatalf("head RunE error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<head>", "FlowSync AI", `href="/favicon.ico"`, "</head>"} {
		if !strings.Contains(out, want) {
			t.Errorf("head output missing %q\n%s", want, out)
		}
	}
}
