package calldata

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Fatal(`expected non-nil`)
	}
	if d.Len() != 0 {
		t.Errorf(`expected 0 fields: %d`, d.Len())
	}
}

func TestData_zeroValue(t *testing.T) {
	var d Data
	if v, ok := d.Value(`missing`); v != nil || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	d.SetInt(`count`, 3)
	if v, ok := d.Int(`count`); v != 3 || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
}

func TestData_typedRoundTrips(t *testing.T) {
	d := New()
	d.SetInt(`int`, -42)
	d.SetFloat(`float`, 2.5)
	d.SetBool(`bool`, true)
	d.SetString(`string`, `hello`)

	if v, ok := d.Int(`int`); v != -42 || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.Float(`float`); v != 2.5 || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.Bool(`bool`); v != true || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.String(`string`); v != `hello` || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if d.Len() != 4 {
		t.Errorf(`expected 4 fields: %d`, d.Len())
	}
}

func TestData_typedGetters_missing(t *testing.T) {
	d := New()
	if v, ok := d.Int(`x`); v != 0 || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.Float(`x`); v != 0 || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.Bool(`x`); v != false || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.String(`x`); v != `` || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
}

func TestData_typedGetters_wrongType(t *testing.T) {
	d := New()
	d.SetString(`x`, `1`)
	if v, ok := d.Int(`x`); v != 0 || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.Float(`x`); v != 0 || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.Bool(`x`); v != false || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	// the untyped getter is indifferent
	if v, ok := d.Value(`x`); v != `1` || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
}

func TestData_Set_replacesInPlace(t *testing.T) {
	d := New()
	d.SetInt(`a`, 1)
	d.SetInt(`b`, 2)
	d.SetInt(`c`, 3)

	// replacement may change the type, but not the position
	d.SetString(`b`, `two`)

	if d.Len() != 3 {
		t.Fatalf(`expected 3 fields: %d`, d.Len())
	}
	for i, name := range []string{`a`, `b`, `c`} {
		if d.fields[i].name != name {
			t.Errorf(`expected field %d to be %q: %q`, i, name, d.fields[i].name)
		}
	}
	if v, ok := d.Int(`b`); v != 0 || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if v, ok := d.String(`b`); v != `two` || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
}

func TestData_Set_arbitraryValue(t *testing.T) {
	d := New()
	in := []int{1, 2, 3}
	d.Set(`slice`, in)
	v, ok := d.Value(`slice`)
	if !ok {
		t.Fatal(`expected ok`)
	}
	if !reflect.DeepEqual(v, in) {
		t.Errorf(`unexpected value: %v`, v)
	}
	d.Set(`nil`, nil)
	if v, ok := d.Value(`nil`); v != nil || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
}

func TestData_Clear(t *testing.T) {
	d := New()
	d.SetInt(`a`, 1)
	d.SetString(`b`, `x`)
	if d.Len() != 2 {
		t.Fatalf(`expected 2 fields: %d`, d.Len())
	}

	d.Clear()

	if d.Len() != 0 {
		t.Errorf(`expected 0 fields: %d`, d.Len())
	}
	if v, ok := d.Int(`a`); v != 0 || ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if cap(d.fields) < 2 {
		t.Errorf(`expected storage to be retained: %d`, cap(d.fields))
	}

	// reusable after clearing
	d.SetInt(`c`, 9)
	if v, ok := d.Int(`c`); v != 9 || !ok {
		t.Errorf(`unexpected value: %v, %v`, v, ok)
	}
	if d.Len() != 1 {
		t.Errorf(`expected 1 field: %d`, d.Len())
	}
}
