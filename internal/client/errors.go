package client

import "fmt"

// StatusError reports a request the server answered but rejected (a non-2xx
// status). It is a separate failure category from transport errors: the
// original status code and response body are preserved for callers to
// inspect with errors.As.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}
