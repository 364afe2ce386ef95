package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/registry"
	"github.com/arthur-debert/evreg/pkg/script"
	"github.com/arthur-debert/evreg/pkg/signature"
	"github.com/arthur-debert/evreg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry(t *testing.T) *registry.Registry[string, *types.Handler] {
	t.Helper()
	reg := registry.New[string, *types.Handler]()
	pool := types.NewHandlerPool()
	require.NoError(t, reg.AddHandler("Open", pool.Get("h1"), signature.Of(signature.Int)))
	require.NoError(t, reg.AddHandler("Open", pool.Get("h2"), signature.Of(signature.Int)))
	require.NoError(t, reg.AddHandler("Tick", pool.Get("h3"), signature.None()))
	return reg
}

func sampleReport(t *testing.T) ReportView {
	t.Helper()
	s, err := script.Parse([]byte(`
ops:
  - {action: add, event: Open, handler: h1, signature: [int]}
  - {action: add, event: Open, handler: h2, signature: [string]}
  - {action: add, event: Open, handler: h1, signature: [int]}
`), script.FormatYAML, "sample.yaml")
	require.NoError(t, err)

	report, _ := script.Replay(registry.New[string, *types.Handler](), types.NewHandlerPool(), s, script.Options{ContinueOnError: true})
	return NewReportView(report)
}

func TestSnapshot(t *testing.T) {
	view := Snapshot(sampleRegistry(t))

	assert.Equal(t, []EventRow{
		{Event: "Open", Signature: "int", Handlers: []string{"h1", "h2"}},
		{Event: "Tick", Signature: "null", Handlers: []string{"h3"}},
	}, view.Events)
}

func TestNewReportView(t *testing.T) {
	view := sampleReport(t)

	require.Len(t, view.Ops, 3)
	assert.Equal(t, "applied", view.Ops[0].Outcome)
	assert.Equal(t, "failed", view.Ops[1].Outcome)
	assert.Contains(t, view.Ops[1].Error, "Expected: int, Actual: string")
	assert.Equal(t, "noop", view.Ops[2].Outcome)
	assert.Equal(t, "1 applied, 1 no-op, 1 failed, 0 skipped", view.Summary())
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatText)

	require.NoError(t, r.RenderTable(Snapshot(sampleRegistry(t))))
	out := buf.String()
	assert.Contains(t, out, "Registered events")
	assert.Contains(t, out, "Open (int)")
	assert.Contains(t, out, "  - h2")
	assert.Contains(t, out, "Tick (null)")
	assert.NotContains(t, out, "\x1b[", "plain text must not carry escape codes")

	buf.Reset()
	require.NoError(t, r.RenderTable(TableView{}))
	assert.Contains(t, buf.String(), "(no events)")

	buf.Reset()
	require.NoError(t, r.RenderReport(sampleReport(t)))
	assert.Contains(t, buf.String(), "failed  #2 add Open/h2 (string)")
	assert.Contains(t, buf.String(), "1 applied, 1 no-op, 1 failed, 0 skipped")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	require.NoError(t, r.RenderTable(Snapshot(sampleRegistry(t))))
	var table TableView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &table))
	assert.Len(t, table.Events, 2)

	buf.Reset()
	require.NoError(t, r.RenderError(assert.AnError))
	var plain map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &plain))
	assert.Equal(t, string(errors.ErrUnknown), plain["code"])
	assert.Equal(t, assert.AnError.Error(), plain["error"])

	buf.Reset()
	mismatch := errors.SignatureMismatch("Open", "int", "string")
	require.NoError(t, r.RenderError(mismatch))
	var coded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &coded))
	assert.Equal(t, "SIGNATURE_MISMATCH", coded["code"])
	assert.Contains(t, coded["error"], "Expected: int, Actual: string")
}

func TestNewRendererPerFormat(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &jsonRenderer{}, NewRenderer(&buf, FormatJSON))
	assert.IsType(t, &textRenderer{}, NewRenderer(&buf, FormatText))

	term, ok := NewRenderer(&buf, FormatTerminal).(*textRenderer)
	require.True(t, ok)
	assert.True(t, term.styled)
	assert.NotNil(t, term.renderer)

	// a buffer is never a terminal, so auto settles on plain text
	auto, ok := NewRenderer(&buf, FormatAuto).(*textRenderer)
	require.True(t, ok)
	assert.False(t, auto.styled)
}

func TestTerminalRendererWritesContent(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTerminal)

	require.NoError(t, r.RenderTable(Snapshot(sampleRegistry(t))))
	assert.Contains(t, buf.String(), "Open")
	assert.Contains(t, buf.String(), "h1")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"Terminal", FormatTerminal, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"html", FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}

func TestDetectFormatNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, FormatText, DetectFormat(f))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(f))
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, FormatText, DetectFormat(&buf))
	assert.Equal(t, FormatText, Resolve(FormatAuto, &buf))
	assert.Equal(t, FormatJSON, Resolve(FormatJSON, &buf))
	assert.Equal(t, FormatTerminal, Resolve(FormatTerminal, &buf))
}
