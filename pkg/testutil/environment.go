package testutil

import (
	"path/filepath"
	"testing"
)

// Environment is an isolated set of evreg directories under one temp dir
type Environment struct {
	Root       string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewEnvironment isolates config and log lookups from the user's machine.
// Variables are restored when the test completes.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("EVREG_CONFIG", "")
	t.Setenv("NO_COLOR", "1")
	return env
}

// WriteConfig writes the user config file evreg finds by default
func (e *Environment) WriteConfig(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, filepath.Join(e.ConfigHome, "evreg"), name, content)
}

// WriteScript writes a script into the environment root
func (e *Environment) WriteScript(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.Root, name, content)
}

// LogFile is where the logger writes inside this environment
func (e *Environment) LogFile() string {
	return filepath.Join(e.StateHome, "evreg", "evreg.log")
}
