// Package types defines the shared data model for pending reboot
// operations: hive identifiers, move-on-reboot requests and flags, typed
// errors, and the fixed exit-code table.
//
// Most users should import pkg/pending instead; this package exists so the
// internal layers and the public API agree on one set of types without
// import cycles.
package types
