// Package core implements the command handlers of sshcm: profile
// CRUD, search, defaults, CSV import/export, and the layered
// resolution that turns a stored profile into the effective settings
// handed to the secure-shell client.
//
// # Resolution layers
//
// [Resolve] merges four layers in increasing precedence:
//
//  1. Hard-coded built-in defaults (binary "ssh", everything else empty)
//  2. The environment's USER value
//  3. Stored default settings (null values never override)
//  4. The profile's own non-empty columns
//
// # Identifier resolution
//
// Commands taking a target accept either a numeric id or a nickname.
// Id-shaped tokens are tried as ids first; the nickname grammar
// (no leading digit, no whitespace) guarantees the two shapes never
// overlap.
package core
