// Package types defines the handler reference type stored in the event
// registry and the pool that interns handlers by name for scripts.
package types
