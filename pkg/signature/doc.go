// Package signature describes the parameter contract shared by every handler
// attached to one event identifier.
//
// A Signature is either the no-parameters marker (None) or an ordered list
// of ParamType tags (Of). The two are distinct states: None never equals
// Of(), even though neither carries a parameter. The zero value is None.
//
// ParamType is a plain string token. The calling layer mints one per
// parameter shape; this package only compares tokens for equality and never
// inspects Go types at runtime.
package signature
