package script

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/signature"
	"go.uber.org/multierr"
)

// Action is the kind of registry operation
type Action string

const (
	// ActionAdd subscribes a handler
	ActionAdd Action = "add"
	// ActionRemove unsubscribes a handler
	ActionRemove Action = "remove"
)

// ParseAction parses an action name, case-insensitively
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "subscribe":
		return ActionAdd, nil
	case "remove", "unsubscribe":
		return ActionRemove, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Op is one scripted registry operation
type Op struct {
	Index     int // 1-based position in the script
	Action    Action
	Event     string
	Handler   string
	Signature signature.Signature
}

// String renders the operation for reports
func (op Op) String() string {
	return fmt.Sprintf("#%d %s %s/%s (%s)", op.Index, op.Action, op.Event, op.Handler, op.Signature)
}

// Script is a parsed registration script
type Script struct {
	Name string
	Ops  []Op
}

// rawOp is the format-neutral shape every reader produces
type rawOp struct {
	action    string
	event     string
	handler   string
	signature *[]string
}

// build converts reader output into a Script, collecting every problem
func build(name string, raws []rawOp) (*Script, error) {
	s := &Script{Name: name, Ops: make([]Op, 0, len(raws))}
	var errs error

	for i, raw := range raws {
		idx := i + 1
		action, err := ParseAction(raw.action)
		if err != nil {
			errs = multierr.Append(errs, invalidOp(name, idx, err.Error()))
			continue
		}
		if strings.TrimSpace(raw.event) == "" {
			errs = multierr.Append(errs, invalidOp(name, idx, "event is required"))
			continue
		}
		if strings.TrimSpace(raw.handler) == "" {
			errs = multierr.Append(errs, invalidOp(name, idx, "handler is required"))
			continue
		}

		sig := signature.None()
		if raw.signature != nil {
			if pos := blankParam(*raw.signature); pos > 0 {
				errs = multierr.Append(errs, invalidOp(name, idx, fmt.Sprintf("signature parameter %d has no type name", pos)))
				continue
			}
			sig = signature.FromStrings(*raw.signature)
		}

		s.Ops = append(s.Ops, Op{
			Index:     idx,
			Action:    action,
			Event:     raw.event,
			Handler:   raw.handler,
			Signature: sig,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return s, nil
}

// blankParam returns the 1-based position of the first blank type name, or 0
func blankParam(names []string) int {
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return i + 1
		}
	}
	return 0
}

func invalidOp(name string, idx int, msg string) error {
	return errors.Newf(errors.ErrScriptInvalid, "%s: op %d: %s", name, idx, msg).
		WithDetails(map[string]interface{}{
			"script": name,
			"op":     idx,
		})
}

// CheckTypes reports every parameter type not in known.
// An empty known list accepts any type.
func (s *Script) CheckTypes(known []string) error {
	if len(known) == 0 {
		return nil
	}
	allowed := make(map[signature.ParamType]struct{}, len(known))
	for _, k := range known {
		allowed[signature.ParamType(k)] = struct{}{}
	}

	var errs error
	for _, op := range s.Ops {
		for _, p := range op.Signature.Params() {
			if _, ok := allowed[p]; !ok {
				errs = multierr.Append(errs, invalidOp(s.Name, op.Index, fmt.Sprintf("unknown parameter type %q", p)))
			}
		}
	}
	return errs
}
