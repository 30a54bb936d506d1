package api

import "fmt"

// StatusError reports a failed API call together with the HTTP status
// observed. Tools inspect Status by equality to recover HTTP semantics
// instead of matching on message text. Transport-level failures that
// never reached the server carry status 500 and a message prefixed with
// "Network error:".
type StatusError struct {
	Status   int
	Endpoint string
	Message  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (status %d, endpoint %s)", e.Message, e.Status, e.Endpoint)
}
