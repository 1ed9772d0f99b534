// Package events provides types and interfaces for publishing puzzle results.
//
// The runner emits a SolvedEvent for every answered part without knowing who
// consumes it. Handlers decide what to do with the result: print it, record
// it, or compare it against a known answer.
//
// The primary components are:
// - SolvedEvent: one answered puzzle part
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
