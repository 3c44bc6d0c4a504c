package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/rwcore/pkg/buildinfo"
	errs "github.com/matzehuels/rwcore/pkg/errors"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"draw", "inspect", "cache", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName+" version "+buildinfo.Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestVerboseFlag(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"-v", "cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the binary")
	}

	if _, _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell accepted")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
		not  string
	}{
		{
			name: "coded",
			err:  fmt.Errorf("invalid options: %w", errs.New(errs.ErrCodeInvalidFormat, "unknown format %q", "gif")),
			want: `unknown format "gif"`,
			not:  "INVALID_FORMAT",
		},
		{
			name: "internal keeps cause",
			err:  errs.Wrap(errs.ErrCodeInternal, errors.New("exit status 1"), "rsvg-convert: bad svg"),
			want: "rsvg-convert: bad svg: exit status 1",
		},
		{
			name: "plain",
			err:  errors.New("accepts at least 1 arg(s), received 0"),
			want: "accepts at least 1 arg(s), received 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorMessage(tt.err)
			if !strings.Contains(got, iconError) {
				t.Errorf("missing error icon: %q", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ErrorMessage() = %q, want it to contain %q", got, tt.want)
			}
			if tt.not != "" && strings.Contains(got, tt.not) {
				t.Errorf("ErrorMessage() = %q should not contain %q", got, tt.not)
			}
		})
	}
}
