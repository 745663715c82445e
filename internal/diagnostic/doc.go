// Package diagnostic provides structured validation findings for an object
// builder configuration.
//
// Each finding carries a stable code so hosts can decide how to surface it
// (marking an input invalid, showing a banner) without parsing messages.
package diagnostic
