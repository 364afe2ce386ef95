// Package registry holds the event dispatch table: a mapping from event
// identifier to the handlers subscribed to it and the parameter signature
// they all share.
//
// The first AddHandler for an identifier records its signature. Every later
// AddHandler or RemoveHandler for that identifier must declare an equal
// signature or it fails with a SIGNATURE_MISMATCH error and leaves the table
// untouched. Adding a handler that is already present, removing one that is
// not, and removing from an unknown identifier are silent no-ops. When the
// last handler of an identifier is removed the identifier disappears, so the
// next AddHandler starts over with whatever signature it declares.
//
// Registry is not safe for concurrent use. Synchronized wraps one behind a
// single RWMutex; both satisfy Table.
//
// Typical usage:
//
//	reg := registry.New[string, *types.Handler]()
//	if err := reg.AddHandler("Open", h, signature.Of(signature.Int)); err != nil {
//	    return err
//	}
//	for _, h := range reg.Handlers("Open") {
//	    // invoke h
//	}
package registry
