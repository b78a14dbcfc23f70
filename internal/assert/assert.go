// This file is part of this software.

// Package assert contains small equality/error helpers used by the package
// test suites, in place of repeating the same t.Fatalf boilerplate at every
// call site.
package assert

import "testing"

// Equal fails the test if got != want.
func Equal(t *testing.T, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("got %v (%T), want %v (%T)", got, got, want, want)
	}
}

// NoError fails the test if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// Error fails the test if err is nil.
func Error(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected an error, got nil")
	}
}

// True fails the test if v is false.
func True(t *testing.T, v bool) {
	t.Helper()
	if !v {
		t.Errorf("expected true, got false")
	}
}
