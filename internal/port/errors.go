package port

import (
	"errors"
	"fmt"
)

// ErrRangeTooSmall matches any RangeTooSmallError via errors.Is.
var ErrRangeTooSmall = errors.New("port range too small")

// RangeTooSmallError reports that a range cannot hold every key.
type RangeTooSmallError struct {
	Range     Range
	Required  int
	Available int
	Secure    bool
}

func (e *RangeTooSmallError) Error() string {
	tls := ""
	if e.Secure {
		tls = " (2 per service with TLS enabled)"
	}
	return fmt.Sprintf("a larger port range is needed: %d ports required%s but range %s only has %d",
		e.Required, tls, e.Range, e.Available)
}

func (e *RangeTooSmallError) Is(target error) bool {
	return target == ErrRangeTooSmall
}

// InvalidProjectError reports a service list the allocator cannot accept.
type InvalidProjectError struct {
	Project Identifier
	Reason  string
}

func (e *InvalidProjectError) Error() string {
	return fmt.Sprintf("invalid service %q: %s", e.Project, e.Reason)
}
