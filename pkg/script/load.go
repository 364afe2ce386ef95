package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/logging"
)

// Format identifies a script encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
	FormatHCL  Format = "hcl"
)

// FormatForPath picks the script format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported script extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Load reads and parses the script at path
func Load(path string) (*Script, error) {
	logger := logging.GetLogger("script")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "script %s not found", path)
		}
		access := errors.Wrap(err, errors.ErrFileAccess, "cannot read file").WithDetail("path", path)
		return nil, errors.Wrapf(access, errors.ErrScriptLoad, "failed to read script %s", path)
	}

	s, err := Parse(data, format, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("ops", len(s.Ops)).
		Msg("Loaded script")
	return s, nil
}

// Parse decodes script data in the given format; name is used in errors
func Parse(data []byte, format Format, name string) (*Script, error) {
	var (
		raws []rawOp
		err  error
	)

	switch format {
	case FormatTOML:
		raws, err = readTOML(data)
	case FormatYAML:
		raws, err = readYAML(data)
	case FormatXML:
		raws, err = readXML(data)
	case FormatHCL:
		raws, err = readHCL(data, name)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported script format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScriptParse, "failed to parse %s script %s", format, name).
			WithDetail("script", name)
	}

	return build(name, raws)
}

func unsupported(format Format, what string) error {
	return fmt.Errorf("%s: %s", format, what)
}
