package testutil

// WalkthroughTOML adds A and B to Open, C to Close without a signature,
// then removes A. Every operation applies.
const WalkthroughTOML = `
[[op]]
action = "add"
event = "Open"
handler = "A"
signature = ["int"]

[[op]]
action = "add"
event = "Open"
handler = "B"
signature = ["int"]

[[op]]
action = "add"
event = "Close"
handler = "C"

[[op]]
action = "remove"
event = "Open"
handler = "A"
signature = ["int"]
`

// MismatchYAML fixes Open to (int), then adds B to Open with (string)
const MismatchYAML = `
ops:
  - action: add
    event: Open
    handler: A
    signature: [int]
  - action: add
    event: Open
    handler: B
    signature: [string]
  - action: add
    event: Close
    handler: C
`
