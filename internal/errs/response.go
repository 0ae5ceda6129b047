package errs

import "fmt"

// ResponseError is returned by handlers that answer a failure with their
// own response body instead of the HTTPError shape.
//
// Body is written to the client verbatim with Status. Err is the internal
// cause and is only ever logged.
type ResponseError struct {
	Status int
	Body   any
	Err    error
}

// NewResponseError wraps cause with the body and status sent to the client.
func NewResponseError(status int, body any, cause error) *ResponseError {
	return &ResponseError{
		Status: status,
		Body:   body,
		Err:    cause,
	}
}

func (e *ResponseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("response error: status %d", e.Status)
	}
	return fmt.Sprintf("response error: status %d: %v", e.Status, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
