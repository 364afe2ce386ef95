package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/logging"
	"github.com/arthur-debert/evreg/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes registry views in one format
type Renderer interface {
	RenderTable(view TableView) error
	RenderReport(view ReportView) error
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved
// against w with Resolve.
func NewRenderer(w io.Writer, format Format) Renderer {
	format = Resolve(format, w)

	logger := logging.GetLogger("output")
	logger.Debug().Str("format", format.String()).Msg("Creating renderer")

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonRenderer{encoder: enc}
	case FormatTerminal:
		return &textRenderer{w: w, styled: true, renderer: lipgloss.NewRenderer(w)}
	default:
		return &textRenderer{w: w}
	}
}

// textRenderer renders plain or styled text
type textRenderer struct {
	w        io.Writer
	styled   bool
	renderer *lipgloss.Renderer
}

func (r *textRenderer) style(name, s string) string {
	if !r.styled {
		return s
	}
	return styles.GetStyle(name).Renderer(r.renderer).Render(s)
}

func (r *textRenderer) RenderTable(view TableView) error {
	var b strings.Builder
	b.WriteString(r.style("Title", "Registered events"))
	b.WriteString("\n")

	if len(view.Events) == 0 {
		b.WriteString(r.style("Noop", "(no events)"))
		b.WriteString("\n")
	}
	for _, ev := range view.Events {
		fmt.Fprintf(&b, "%s (%s)\n", r.style("Event", ev.Event), r.style("Signature", ev.Signature))
		for _, h := range ev.Handlers {
			b.WriteString(r.style("Handler", "  - "+h))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderReport(view ReportView) error {
	var b strings.Builder
	b.WriteString(r.style("Title", "Replay of "+view.Script))
	b.WriteString("\n")

	for _, op := range view.Ops {
		outcome := r.style(outcomeStyle(op.Outcome), fmt.Sprintf("%-7s", op.Outcome))
		fmt.Fprintf(&b, "%s #%d %s %s/%s (%s)\n", outcome, op.Index, op.Action, op.Event, op.Handler, op.Signature)
		if op.Error != "" {
			b.WriteString("        ")
			b.WriteString(r.style("Error", op.Error))
			b.WriteString("\n")
		}
	}
	b.WriteString(r.style("Summary", view.Summary()))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.w, r.style("Error", "Error: "+err.Error()))
	return werr
}

func outcomeStyle(outcome string) string {
	switch outcome {
	case "applied":
		return "Applied"
	case "failed":
		return "Failed"
	case "skipped":
		return "Skipped"
	default:
		return "Noop"
	}
}

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderTable(view TableView) error {
	return r.encoder.Encode(view)
}

func (r *jsonRenderer) RenderReport(view ReportView) error {
	return r.encoder.Encode(view)
}

// errorView is the JSON shape of a rendered error
type errorView struct {
	Code  errors.ErrorCode `json:"code"`
	Error string           `json:"error"`
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(errorView{Code: errors.GetErrorCode(err), Error: err.Error()})
}
