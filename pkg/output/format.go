package output

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how views are written
type Format int

const (
	// FormatAuto picks terminal or text from the destination
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps a --format value to a Format. The empty string is auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (use auto, term, text or json)", s)
	}
}

// Resolve turns FormatAuto into a concrete format for w. Other formats are
// returned unchanged.
func Resolve(format Format, w io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	return DetectFormat(w)
}

// DetectFormat returns FormatTerminal only when w is a color capable
// terminal and NO_COLOR is unset. Writers that are not files are text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return FormatText
	}
	if termenv.NewOutput(w).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
