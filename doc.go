// Package signalhub implements a thread-safe, named-event dispatch registry,
// a process-local observer/pub-sub primitive. Components register interest in
// named events ("signals") via [Hub.Connect], and receive synchronous
// callbacks, in registration order, when those events are emitted via
// [Hub.Emit].
//
// Locking is two-level and fine-grained: one lock guards the name to signal
// mapping, and each signal has its own lock guarding its callback list. The
// outer lock is always released before an inner lock is acquired, so emitting
// one signal never contends with connecting to another.
//
// See also [github.com/joeycumines/go-signalhub/calldata], a dynamic
// name/value payload container, suitable as the hub's payload type.
package signalhub
