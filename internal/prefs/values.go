// This file is part of this software.

// Package prefs implements a tiny typed-value preferences layer: named
// values that can be set generically (through a string or their native
// type) and persisted to a flat "key :: value" file. It exists so deeply
// nested emulator code (a CPU calibration knob, a protect-Timer1 toggle)
// can be configured and saved without threading a configuration struct
// through every constructor.
package prefs

import (
	"fmt"
	"strconv"
)

// Value is anything that can be read generically for persistence.
type Value interface {
	fmt.Stringer
}

// setter is implemented by every concrete preference type in this package.
type setter interface {
	Value
	Set(interface{}) error
	load(string) error
}

// Bool is a persisted boolean preference.
type Bool struct {
	value bool
}

func (b *Bool) Get() bool { return b.value }

func (b *Bool) Set(v interface{}) error {
	switch t := v.(type) {
	case bool:
		b.value = t
	case string:
		p, err := strconv.ParseBool(t)
		if err != nil {
			b.value = false
			return nil
		}
		b.value = p
	default:
		return fmt.Errorf("prefs: unsupported type for Bool: %T", v)
	}
	return nil
}

func (b *Bool) load(s string) error { return b.Set(s) }

func (b Bool) String() string { return strconv.FormatBool(b.value) }

// Int is a persisted integer preference.
type Int struct {
	value int
}

func (i *Int) Get() int { return i.value }

func (i *Int) Set(v interface{}) error {
	switch t := v.(type) {
	case int:
		i.value = t
	case string:
		p, err := strconv.Atoi(t)
		if err != nil {
			return fmt.Errorf("prefs: cannot parse Int: %w", err)
		}
		i.value = p
	default:
		return fmt.Errorf("prefs: unsupported type for Int: %T", v)
	}
	return nil
}

func (i *Int) load(s string) error { return i.Set(s) }

func (i Int) String() string { return strconv.Itoa(i.value) }

// Float is a persisted floating point preference.
type Float struct {
	value float64
}

func (f *Float) Get() float64 { return f.value }

func (f *Float) Set(v interface{}) error {
	switch t := v.(type) {
	case float64:
		f.value = t
	case string:
		p, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot parse Float: %w", err)
		}
		f.value = p
	default:
		return fmt.Errorf("prefs: unsupported type for Float: %T", v)
	}
	return nil
}

func (f *Float) load(s string) error { return f.Set(s) }

func (f Float) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

// String is a persisted string preference, optionally capped to a maximum
// length.
type String struct {
	value  string
	maxLen int
}

func (s *String) Get() string { return s.value }

func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	if n > 0 && len(s.value) > n {
		s.value = s.value[:n]
	}
}

func (s *String) Set(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: unsupported type for String: %T", v)
	}
	if s.maxLen > 0 && len(str) > s.maxLen {
		str = str[:s.maxLen]
	}
	s.value = str
	return nil
}

func (s *String) load(v string) error { return s.Set(v) }

func (s String) String() string { return s.value }

// generic wraps an arbitrary load/save pair, for values whose storage isn't
// one of the scalar types above (e.g. a packed "w,h" pair).
type generic struct {
	setFn func(Value) error
	getFn func() Value
}

// NewGeneric creates a preference backed by caller-supplied load/save
// functions.
func NewGeneric(setFn func(Value) error, getFn func() Value) *generic {
	return &generic{setFn: setFn, getFn: getFn}
}

func (g *generic) Set(v interface{}) error {
	val, ok := v.(Value)
	if !ok {
		if s, ok := v.(string); ok {
			return g.setFn(stringValue(s))
		}
		return fmt.Errorf("prefs: unsupported type for generic: %T", v)
	}
	return g.setFn(val)
}

func (g *generic) load(s string) error { return g.setFn(stringValue(s)) }

// stringValue carries a raw string (from Set or a loaded line) to setFn.
type stringValue string

func (s stringValue) String() string { return string(s) }

func (g *generic) String() string { return fmt.Sprintf("%v", g.getFn()) }
