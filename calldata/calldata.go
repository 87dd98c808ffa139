// Package calldata provides a dynamic, insertion-ordered name/value
// container, for passing parameters from signal emitters to callbacks, e.g.
// as the payload type of a [github.com/joeycumines/go-signalhub.Hub].
package calldata

type (
	// Data is a set of named values, retained in insertion order. The zero
	// value is ready to use. It is not safe for concurrent mutation; the
	// intended pattern is for an emitter to populate it, then share it with
	// callbacks, which read it.
	Data struct {
		fields []field
	}

	field struct {
		name  string
		value any
	}
)

// New initializes an empty Data, and is provided as a convenience, the zero
// value also being ready to use.
func New() *Data {
	return new(Data)
}

// lookup returns the named field, or nil.
func (x *Data) lookup(name string) *field {
	for i := range x.fields {
		if x.fields[i].name == name {
			return &x.fields[i]
		}
	}
	return nil
}

// set replaces the named field's value in place, preserving field order, or
// appends a new field.
func (x *Data) set(name string, value any) {
	if f := x.lookup(name); f != nil {
		f.value = value
	} else {
		x.fields = append(x.fields, field{name: name, value: value})
	}
}

// Set stores value under name, replacing any existing value, regardless of
// its type. Setting an existing name retains its position; a new name is
// appended.
func (x *Data) Set(name string, value any) {
	x.set(name, value)
}

// SetInt stores an integer value under name.
func (x *Data) SetInt(name string, value int64) {
	x.set(name, value)
}

// SetFloat stores a floating-point value under name.
func (x *Data) SetFloat(name string, value float64) {
	x.set(name, value)
}

// SetBool stores a boolean value under name.
func (x *Data) SetBool(name string, value bool) {
	x.set(name, value)
}

// SetString stores a string value under name.
func (x *Data) SetString(name string, value string) {
	x.set(name, value)
}

// Value returns the value stored under name, or (nil, false) if there is
// none.
func (x *Data) Value(name string) (any, bool) {
	if f := x.lookup(name); f != nil {
		return f.value, true
	}
	return nil, false
}

// Int returns the integer value stored under name, or (0, false) if there
// is none, or it was not stored as an integer, see also SetInt.
func (x *Data) Int(name string) (int64, bool) {
	value, _ := x.Value(name)
	v, ok := value.(int64)
	return v, ok
}

// Float returns the floating-point value stored under name, or (0, false)
// if there is none, or it was not stored as a float, see also SetFloat.
func (x *Data) Float(name string) (float64, bool) {
	value, _ := x.Value(name)
	v, ok := value.(float64)
	return v, ok
}

// Bool returns the boolean value stored under name, or (false, false) if
// there is none, or it was not stored as a boolean, see also SetBool.
func (x *Data) Bool(name string) (bool, bool) {
	value, _ := x.Value(name)
	v, ok := value.(bool)
	return v, ok
}

// String returns the string value stored under name, or ("", false) if
// there is none, or it was not stored as a string, see also SetString.
func (x *Data) String(name string) (string, bool) {
	value, _ := x.Value(name)
	v, ok := value.(string)
	return v, ok
}

// Len returns the number of fields.
func (x *Data) Len() int {
	return len(x.fields)
}

// Clear removes all fields, retaining the underlying storage, e.g. for
// reuse across emissions.
func (x *Data) Clear() {
	clear(x.fields)
	x.fields = x.fields[:0]
}
