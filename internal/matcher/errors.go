package matcher

import (
	"errors"
	"fmt"
)

// Kind tags why a call to the matching service failed.
type Kind string

const (
	KindTransport Kind = "transport"
	KindDecode    Kind = "decode"
	KindService   Kind = "service"
)

// Error is returned by every failed Client call.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int // set for KindService
	Cause      error
}

func (e *Error) Error() string {
	if e.Kind == KindService {
		return fmt.Sprintf("matcher %s: %s error: status %d", e.Op, e.Kind, e.StatusCode)
	}

	if e.Cause != nil {
		return fmt.Sprintf("matcher %s: %s error: %v", e.Op, e.Kind, e.Cause)
	}

	return fmt.Sprintf("matcher %s: %s error", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf reports the failure kind of err, or "" if err did not come from a Client.
func KindOf(err error) Kind {
	var merr *Error
	if errors.As(err, &merr) {
		return merr.Kind
	}

	return ""
}
