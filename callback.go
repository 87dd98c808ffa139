package signalhub

import (
	"golang.org/x/exp/slices"
	"reflect"
)

type (
	// Callback models a signal handler. On emission it receives the emitted
	// payload, and the data value that was provided at connect time.
	//
	// For the purpose of connecting and disconnecting, a registration is
	// identified by the pair of the callback's code pointer and the data
	// value. Closures produced by the same function literal share a code
	// pointer, regardless of what they capture, as do method values of the
	// same method. Multiple registrations of such callbacks must be
	// disambiguated using distinct data values.
	//
	// Data is matched using ==. A value that does not equal itself, e.g.
	// one containing a NaN float, therefore never matches an existing
	// registration: each such connect registers anew, and no disconnect
	// can remove it.
	Callback[T any] func(params T, data any)

	// callbackEntry is a single registration on a signal, identified by the
	// (fn, data) pair.
	callbackEntry[T any] struct {
		callback Callback[T]
		data     any
		fn       uintptr
	}
)

// callbackFn returns the code pointer half of a registration's identity.
func callbackFn[T any](callback Callback[T]) uintptr {
	return reflect.ValueOf(callback).Pointer()
}

// checkData panics if data cannot be used as part of a registration's
// identity, i.e. if comparing it with == would panic. Note that this is a
// property of the value, not just the type, e.g. a comparable struct type
// with an interface field may hold an uncomparable value.
func checkData(data any) {
	if data != nil && !reflect.ValueOf(data).Comparable() {
		panic(`signalhub: data must be comparable`)
	}
}

// indexCallback returns the position of the registration identified by
// (fn, data) within callbacks, or -1 if there is no such registration.
func indexCallback[T any](callbacks []callbackEntry[T], fn uintptr, data any) int {
	return slices.IndexFunc(callbacks, func(e callbackEntry[T]) bool {
		return e.fn == fn && e.data == data
	})
}
