// This file is part of this software.

package faults

import (
	"errors"
	"fmt"
)

// curated is a predefined error category carrying a formatted detail
// message. Code tests against the category with errors.Is / errors.As,
// not the formatted string.
type curated struct {
	errno Errno
	err   error
}

// New creates a curated error in category errno with a formatted detail
// message.
func New(errno Errno, format string, args ...interface{}) error {
	return curated{errno: errno, err: fmt.Errorf(format, args...)}
}

func (c curated) Error() string {
	return fmt.Sprintf("%s: %s", c.errno, c.err)
}

func (c curated) Unwrap() error {
	return c.err
}

// Is reports whether target is the same Errno category. Lets callers write
// errors.Is(err, faults.Sentinel(faults.RegionOverlap)) to test a category
// regardless of the detail message.
func (c curated) Is(target error) bool {
	var other curated
	if errors.As(target, &other) {
		return c.errno == other.errno
	}
	return false
}

// Category returns the Errno of err if it is a curated error produced by
// this package, and ok=false otherwise.
func Category(err error) (errno Errno, ok bool) {
	var c curated
	if errors.As(err, &c) {
		return c.errno, true
	}
	return 0, false
}

// Sentinel returns a zero-detail curated error for the given category,
// suitable for use as a comparison target with errors.Is.
func Sentinel(errno Errno) error {
	return curated{errno: errno, err: errors.New(errno.String())}
}
