package signalhub

import (
	"github.com/joeycumines/logiface"
	"golang.org/x/exp/slices"
	"sync"
)

type (
	// Hub is a thread-safe, named-event dispatch registry. Callbacks are
	// registered against signal names via Connect, and invoked synchronously,
	// in registration order, by Emit. All methods are safe for concurrent
	// use, including Close.
	//
	// Instances must be initialized using the New factory.
	Hub[T any] struct {
		logger *logiface.Logger[logiface.Event] // configurable

		// mu guards signals, for membership only. It is never held while a
		// signalList.mu is held, see also ensureSignal and getSignal.
		mu sync.RWMutex
		// signals is keyed by signal name, and is append-only while open, so
		// values remain valid after mu is released. A nil map means closed.
		signals map[string]*signalList[T]

		closeOnce sync.Once
	}

	// signalList is one named signal: its registrations, in registration
	// order, guarded by its own lock. Created lazily on first connect, and
	// discarded only at hub closure, never individually.
	signalList[T any] struct {
		mu        sync.Mutex
		callbacks []callbackEntry[T]
		// closed is set by Hub.Close, and stops connects that resolved this
		// signal prior to closure from registering into it after.
		closed bool
	}
)

// New initializes a new Hub, dispatching payloads of type T, using the
// provided options.
func New[T any](options ...Option) *Hub[T] {
	var c hubConfig
	for _, o := range options {
		o(&c)
	}
	return &Hub[T]{
		logger:  c.logger,
		signals: make(map[string]*signalList[T]),
	}
}

// getSignal returns the named signal, or nil, without creating it. No locks
// are held on return.
func (x *Hub[T]) getSignal(name string) *signalList[T] {
	x.mu.RLock()
	sig := x.signals[name]
	x.mu.RUnlock()
	return sig
}

// ensureSignal returns the named signal, creating it if absent, or nil if
// the hub is closed. A new signal is initialized and linked into the map
// before the hub lock is released, so concurrent first connects to the same
// name converge on a single signalList. No locks are held on return.
func (x *Hub[T]) ensureSignal(name string) *signalList[T] {
	if sig := x.getSignal(name); sig != nil {
		return sig
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.signals == nil {
		return nil
	}
	sig := x.signals[name]
	if sig == nil {
		sig = &signalList[T]{}
		x.signals[name] = sig
	}
	return sig
}

// connect appends entry, unless closed or already registered, returning the
// new number of registrations, or 0 if nothing was appended.
func (x *signalList[T]) connect(entry callbackEntry[T]) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed || indexCallback(x.callbacks, entry.fn, entry.data) >= 0 {
		return 0
	}
	x.callbacks = append(x.callbacks, entry)
	return len(x.callbacks)
}

// disconnect removes the registration identified by fn and data, returning
// the new number of registrations, and whether anything was removed.
func (x *signalList[T]) disconnect(fn uintptr, data any) (int, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	i := indexCallback(x.callbacks, fn, data)
	if i < 0 {
		return 0, false
	}
	x.callbacks = slices.Delete(x.callbacks, i, i+1)
	return len(x.callbacks), true
}

// emit invokes the registered callbacks, in order, holding the lock for the
// full duration of the emission.
func (x *signalList[T]) emit(params T) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for i := range x.callbacks {
		cb := &x.callbacks[i]
		cb.callback(params, cb.data)
	}
}

func (x *signalList[T]) count() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.callbacks)
}

// close drops all registrations, blocking until any in-flight emission has
// completed, and stops subsequent connects.
func (x *signalList[T]) close() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.closed = true
	x.callbacks = nil
}

// Connect registers callback against the named signal, to be invoked with
// data on each subsequent emission. Connecting an identical registration,
// i.e. the same callback and data per the identity documented on [Callback],
// is a no-op. Signals are created lazily, on first connect.
//
// Connect panics if callback is nil, or if data is not comparable. It is
// safe to call concurrently with any other method, and has no effect after
// Close.
func (x *Hub[T]) Connect(signal string, callback Callback[T], data any) {
	if callback == nil {
		panic(`signalhub: nil callback`)
	}
	checkData(data)

	sig := x.ensureSignal(signal)
	if sig == nil {
		return
	}

	count := sig.connect(callbackEntry[T]{
		callback: callback,
		data:     data,
		fn:       callbackFn(callback),
	})
	if count != 0 {
		x.logger.Debug().
			Str(`signal`, signal).
			Int(`callbacks`, count).
			Log(`signal callback connected`)
	}
}

// Disconnect removes the registration identified by callback and data from
// the named signal, preserving the relative order of the remaining
// registrations. It is a no-op if the signal or the registration does not
// exist, or if callback is nil.
//
// Disconnect panics if data is not comparable. It is safe to call
// concurrently with any other method.
func (x *Hub[T]) Disconnect(signal string, callback Callback[T], data any) {
	checkData(data)
	if callback == nil {
		return
	}

	sig := x.getSignal(signal)
	if sig == nil {
		return
	}

	if count, ok := sig.disconnect(callbackFn(callback), data); ok {
		x.logger.Debug().
			Str(`signal`, signal).
			Int(`callbacks`, count).
			Log(`signal callback disconnected`)
	}
}

// Emit synchronously invokes every callback registered against the named
// signal, in registration order, passing params and each registration's own
// data. It is a no-op if the signal does not exist, or the hub is closed.
//
// The signal's lock is held for the full duration of the emission, so
// registrations cannot change mid-iteration, and a given signal has at most
// one in-flight emission at a time. Consequently, callbacks must not call
// Connect, Disconnect, Emit, or Count for the same signal, as that would
// deadlock. Close would likewise deadlock, as it acquires every signal's
// lock. Callback panics propagate to the caller of Emit.
func (x *Hub[T]) Emit(signal string, params T) {
	sig := x.getSignal(signal)
	if sig == nil {
		return
	}

	x.logger.Trace().
		Limit().
		Str(`signal`, signal).
		Log(`emitting signal`)

	sig.emit(params)
}

// Count returns the number of callbacks currently registered against the
// named signal, or 0 if the signal does not exist, or the hub is closed.
func (x *Hub[T]) Count(signal string) int {
	sig := x.getSignal(signal)
	if sig == nil {
		return 0
	}
	return sig.count()
}

// Close tears down the hub. It is idempotent, safe to call concurrently with
// any other method, and never returns a non-nil error, the error being
// solely for [io.Closer]. Close is a no-op on a nil receiver.
//
// Once Close has returned, no callback will be invoked, and all other
// methods are no-ops. An emission already in progress is allowed to
// complete, Close blocking until it has.
func (x *Hub[T]) Close() error {
	if x == nil {
		return nil
	}
	x.closeOnce.Do(func() {
		x.mu.Lock()
		signals := x.signals
		x.signals = nil
		x.mu.Unlock()

		// drop all registrations, which also waits out any in-flight
		// emission that found its signal prior to the above
		for _, sig := range signals {
			sig.close()
		}

		x.logger.Debug().
			Int(`signals`, len(signals)).
			Log(`signal hub closed`)
	})
	return nil
}
