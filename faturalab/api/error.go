package api

import "fmt"

// RequestError is a transport-level failure: the request never completed or
// the response could not be produced. Business-level failures (HTTP 200 with
// success=false) are never wrapped in this type; they come back as data.
type RequestError struct {
	StatusCode   int
	Err          error
	Body         string
	ErrorDetails map[string]any
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d err: %v message: %s", r.StatusCode, r.Err, r.Body)
}

func (r *RequestError) Unwrap() error {
	return r.Err
}
