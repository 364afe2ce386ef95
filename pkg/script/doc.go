// Package script reads registration scripts and replays them against an
// event registry.
//
// A script is an ordered list of add/remove operations. Each operation names
// an event, a handler and the parameter signature the handler declares.
// Handler names are interned through a types.HandlerPool, so the same name
// always refers to the same handler reference.
//
// Scripts can be written in TOML, YAML, XML or HCL; the reader is chosen by
// file extension. In every format an operation without a signature declares
// the no-parameters marker, while an explicit empty list declares an empty
// signature:
//
//	# TOML
//	[[op]]
//	action = "add"
//	event = "Open"
//	handler = "onOpen"
//	signature = ["int"]
//
//	# HCL
//	op "remove" {
//	  event   = "Open"
//	  handler = "onOpen"
//	  signature = ["int"]
//	}
package script
