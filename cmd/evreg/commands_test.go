package evreg

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/output"
	"github.com/arthur-debert/evreg/pkg/output/styles"
	"github.com/arthur-debert/evreg/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReplay(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

	out, err := run(t, "replay", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Registered events\nOpen (int)\n  - B\nClose (null)\n  - C\n")
	assert.Contains(t, out, "Replay of walk.toml")
	assert.Contains(t, out, "4 applied, 0 no-op, 0 failed, 0 skipped")
	assert.True(t, testutil.FileExists(t, env.LogFile()), "commands log to the state dir")
}

func TestReplayLogsHandlerNames(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

	_, err := run(t, "-v", "replay", path)
	require.NoError(t, err)

	data, err := os.ReadFile(env.LogFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"cmd.replay"`)
	assert.Contains(t, string(data), `"path":"`+path+`"`)
	assert.Contains(t, string(data), `"handler_names":["A","B","C"]`)
}

func TestReplayStopsAtMismatch(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteScript("bad.yaml", testutil.MismatchYAML)

	out, err := run(t, "replay", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replay of bad.yaml failed")
	assert.Contains(t, out, "for event ID Open. Expected: int, Actual: string")
	assert.Contains(t, out, "1 applied, 0 no-op, 1 failed, 1 skipped")
	assert.NotContains(t, out, "Close (null)")
}

func TestReplayContinue(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		path := env.WriteScript("bad.yaml", testutil.MismatchYAML)

		out, err := run(t, "replay", "--continue", path)
		require.Error(t, err)
		assert.Contains(t, out, "2 applied, 0 no-op, 1 failed, 0 skipped")
		assert.Contains(t, out, "Close (null)")
	})

	t.Run("config", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		path := env.WriteScript("bad.yaml", testutil.MismatchYAML)
		t.Setenv("EVREG_REPLAY__CONTINUE_ON_ERROR", "true")

		out, err := run(t, "replay", path)
		require.Error(t, err)
		assert.Contains(t, out, "2 applied, 0 no-op, 1 failed, 0 skipped")
	})
}

func TestReplayJSON(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

	out, err := run(t, "--format", "json", "replay", path)
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var table output.TableView
	require.NoError(t, dec.Decode(&table))
	require.Len(t, table.Events, 2)
	assert.Equal(t, output.EventRow{Event: "Open", Signature: "int", Handlers: []string{"B"}}, table.Events[0])
	assert.Equal(t, "null", table.Events[1].Signature)

	var report output.ReportView
	require.NoError(t, dec.Decode(&report))
	assert.Equal(t, "walk.toml", report.Script)
	assert.Equal(t, 4, report.Applied)
	assert.Len(t, report.Ops, 4)
}

func TestReplayErrors(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

	_, err := run(t, "replay", filepath.Join(env.Root, "missing.toml"))
	assert.Error(t, err)

	_, err = run(t, "replay", env.WriteScript("walk.ini", "x"))
	assert.Error(t, err)

	_, err = run(t, "--format", "html", "replay", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")

	_, err = run(t, "replay")
	assert.Error(t, err, "script argument is required")
}

func TestCheck(t *testing.T) {
	t.Run("clean script", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

		out, err := run(t, "check", path)
		require.NoError(t, err)
		assert.Equal(t, "walk.toml: 4 operations, no problems found\n", out)
	})

	t.Run("mismatch", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		path := env.WriteScript("bad.yaml", testutil.MismatchYAML)

		out, err := run(t, "check", path)
		require.Error(t, err)
		assert.Equal(t, "bad.yaml: 1 problem(s) found", err.Error())
		assert.Contains(t, out, "Expected: int, Actual: string")
	})

	t.Run("builtin types", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		path := env.WriteScript("widget.yaml", "ops:\n  - {action: add, event: Open, handler: A, signature: [int, widget]}\n")

		_, err := run(t, "check", path)
		require.NoError(t, err)

		out, err := run(t, "check", "--builtin", path)
		require.Error(t, err)
		assert.Equal(t, "widget.yaml: 1 problem(s) found", err.Error())
		assert.Contains(t, out, `unknown parameter type "widget"`)

		t.Setenv("EVREG_SIGNATURE__KNOWN_TYPES", "widget")
		_, err = run(t, "check", "--builtin", path)
		assert.NoError(t, err)
	})

	t.Run("known types", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		path := env.WriteScript("bad.yaml", testutil.MismatchYAML)
		t.Setenv("EVREG_SIGNATURE__KNOWN_TYPES", "int")

		out, err := run(t, "check", path)
		require.Error(t, err)
		assert.Equal(t, "bad.yaml: 2 problem(s) found", err.Error())
		assert.Contains(t, out, `unknown parameter type "string"`)
	})
}

func TestBadConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

	_, err := run(t, "--config", filepath.Join(env.Root, "nope.toml"), "replay", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestStylesFromConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	t.Cleanup(func() { _ = styles.Reset() })
	path := env.WriteScript("walk.toml", testutil.WalkthroughTOML)

	env.WriteConfig("config.toml", "[output]\nstyles = \""+filepath.Join(env.Root, "missing.yaml")+"\"\n")
	_, err := run(t, "replay", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load styles")

	custom := env.WriteScript("styles.yaml", "styles:\n  Event:\n    underline: true\n")
	env.WriteConfig("config.toml", "[output]\nstyles = \""+custom+"\"\n")
	out, err := run(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Open (int)")
}

func TestTopicsCmd(t *testing.T) {
	testutil.NewEnvironment(t)

	out, err := run(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  scripts\n  signatures\n")

	out, err = run(t, "topics", "signatures")
	require.NoError(t, err)
	assert.Contains(t, out, "None versus empty")

	out, err = run(t, "help", "scripts")
	require.NoError(t, err)
	assert.Contains(t, out, "Registration scripts")

	_, err = run(t, "topics", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown help topic "nope"`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestMiscCommands(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		testutil.NewEnvironment(t)
		out, err := run(t)
		require.Error(t, err)
		assert.Contains(t, out, "COMMANDS:")
		assert.Contains(t, out, "replay")
	})

	t.Run("version", func(t *testing.T) {
		testutil.NewEnvironment(t)
		out, err := run(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "evreg version dev")
	})

	t.Run("completion", func(t *testing.T) {
		testutil.NewEnvironment(t)
		out, err := run(t, "completion", "bash")
		require.NoError(t, err)
		assert.Contains(t, out, "evreg")

		_, err = run(t, "completion", "tcsh")
		assert.Error(t, err)
	})

	t.Run("man", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		manDir := filepath.Join(env.Root, "man")
		_, err := run(t, "man", manDir)
		require.NoError(t, err)

		assert.True(t, testutil.FileExists(t, filepath.Join(manDir, "evreg.1")))
		assert.True(t, testutil.FileExists(t, filepath.Join(manDir, "evreg-replay.1")))
	})
}

func TestGenCompletionUnknownShell(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, GenCompletion(NewRootCmd(), "tcsh", &buf))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "ABC", formatUpper("abc"))
	// test output is not a terminal
	assert.Equal(t, "abc", formatBold("abc"))
	assert.Equal(t, "ABC", formatBoldUpper("abc"))
}
