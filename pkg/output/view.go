package output

import (
	"fmt"

	"github.com/arthur-debert/evreg/pkg/script"
)

// EventRow is the rendered view of one registry entry
type EventRow struct {
	Event     string   `json:"event"`
	Signature string   `json:"signature"`
	Handlers  []string `json:"handlers"`
}

// TableView is the rendered view of the whole registry
type TableView struct {
	Events []EventRow `json:"events"`
}

// Snapshot captures the registry contents in first-registration order
func Snapshot(table script.Table) TableView {
	events := table.Events()
	view := TableView{Events: make([]EventRow, 0, len(events))}
	for _, ev := range events {
		entry, ok := table.Entry(ev)
		if !ok {
			continue
		}
		names := make([]string, len(entry.Handlers))
		for i, h := range entry.Handlers {
			names[i] = h.String()
		}
		view.Events = append(view.Events, EventRow{
			Event:     ev,
			Signature: entry.Signature.String(),
			Handlers:  names,
		})
	}
	return view
}

// OpRow is the rendered view of one replayed operation
type OpRow struct {
	Index     int    `json:"index"`
	Action    string `json:"action"`
	Event     string `json:"event"`
	Handler   string `json:"handler"`
	Signature string `json:"signature"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
}

// ReportView is the rendered view of a replay report
type ReportView struct {
	Script  string  `json:"script"`
	Ops     []OpRow `json:"ops"`
	Applied int     `json:"applied"`
	Noops   int     `json:"noops"`
	Failed  int     `json:"failed"`
	Skipped int     `json:"skipped"`
}

// NewReportView converts a replay report for rendering
func NewReportView(r *script.Report) ReportView {
	view := ReportView{
		Script:  r.Script,
		Ops:     make([]OpRow, len(r.Results)),
		Applied: r.Applied,
		Noops:   r.Noops,
		Failed:  r.Failed,
		Skipped: r.Skipped,
	}
	for i, res := range r.Results {
		row := OpRow{
			Index:     res.Op.Index,
			Action:    string(res.Op.Action),
			Event:     res.Op.Event,
			Handler:   res.Op.Handler,
			Signature: res.Op.Signature.String(),
			Outcome:   string(res.Outcome),
		}
		if res.Err != nil {
			row.Error = res.Err.Error()
		}
		view.Ops[i] = row
	}
	return view
}

// Summary returns the one-line totals of a report
func (v ReportView) Summary() string {
	return fmt.Sprintf("%d applied, %d no-op, %d failed, %d skipped", v.Applied, v.Noops, v.Failed, v.Skipped)
}
