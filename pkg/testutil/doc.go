// Package testutil provides utilities for testing evreg components.
//
// Key components:
//   - Environment: points every XDG lookup and EVREG_ variable at a temp dir
//   - CreateFile / CreateDir: fixture files that fail the test on error
//   - Scripts: registration scripts shared by the script and CLI tests
package testutil
