package script

import (
	"fmt"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/logging"
	"github.com/arthur-debert/evreg/pkg/registry"
	"github.com/arthur-debert/evreg/pkg/types"
	"go.uber.org/multierr"
)

// Outcome describes what an operation did to the table
type Outcome string

const (
	// OutcomeApplied means the handler set changed
	OutcomeApplied Outcome = "applied"
	// OutcomeNoop means the call succeeded without changing anything
	OutcomeNoop Outcome = "noop"
	// OutcomeFailed means the call returned an error
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped means replay stopped before reaching the operation
	OutcomeSkipped Outcome = "skipped"
)

// OpResult is the outcome of one replayed operation
type OpResult struct {
	Op      Op
	Outcome Outcome
	Err     error
}

// Report summarizes a replay
type Report struct {
	Script  string
	Results []OpResult
	Applied int
	Noops   int
	Failed  int
	Skipped int
}

// Options control replay behavior
type Options struct {
	// ContinueOnError keeps replaying after a failed operation and returns
	// every failure combined. By default replay stops at the first failure.
	ContinueOnError bool
}

// Table is the registry surface replay drives
type Table = registry.Table[string, *types.Handler]

// Replay applies the script's operations to table in order.
// The returned error combines every failure that occurred.
func Replay(table Table, pool *types.HandlerPool, s *Script, opts Options) (*Report, error) {
	logger := logging.GetLogger("script.replay")
	done := logging.LogOperationStart(logger, "replay")
	defer done()

	report := &Report{Script: s.Name, Results: make([]OpResult, 0, len(s.Ops))}
	var errs error

	for i, op := range s.Ops {
		if errs != nil && !opts.ContinueOnError {
			for _, rest := range s.Ops[i:] {
				report.Results = append(report.Results, OpResult{Op: rest, Outcome: OutcomeSkipped})
				report.Skipped++
			}
			break
		}

		outcome, err := apply(table, pool, op)
		report.Results = append(report.Results, OpResult{Op: op, Outcome: outcome, Err: err})

		switch outcome {
		case OutcomeApplied:
			report.Applied++
		case OutcomeNoop:
			report.Noops++
		case OutcomeFailed:
			report.Failed++
			errs = multierr.Append(errs, fmt.Errorf("%s: op %d (%s %s): %w", s.Name, op.Index, op.Action, op.Event, err))
			logger.Debug().Err(err).Int("op", op.Index).Msg("Operation failed")
		}
	}

	logger.Info().
		Str("script", s.Name).
		Int("applied", report.Applied).
		Int("noops", report.Noops).
		Int("failed", report.Failed).
		Msg("Replay finished")
	return report, errs
}

// Check replays s against a scratch registry and returns every failure
func Check(s *Script) error {
	_, err := Replay(registry.New[string, *types.Handler](), types.NewHandlerPool(), s, Options{ContinueOnError: true})
	return err
}

func apply(table Table, pool *types.HandlerPool, op Op) (Outcome, error) {
	handler := pool.Get(op.Handler)
	before := len(table.Handlers(op.Event))

	var err error
	switch op.Action {
	case ActionAdd:
		err = table.AddHandler(op.Event, handler, op.Signature)
	case ActionRemove:
		err = table.RemoveHandler(op.Event, handler, op.Signature)
	default:
		err = errors.Newf(errors.ErrInternal, "unknown action %q", op.Action)
	}
	if err != nil {
		return OutcomeFailed, err
	}

	if len(table.Handlers(op.Event)) == before {
		return OutcomeNoop, nil
	}
	return OutcomeApplied, nil
}
