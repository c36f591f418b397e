package backend

import "errors"

// RequestFailed is returned whenever a call to the service does not succeed.
// Network failures, malformed responses and application errors all collapse
// into this one kind.
type RequestFailed struct {
	Message string
	Cause   error
}

func (e *RequestFailed) Error() string {
	return e.Message
}

func (e *RequestFailed) Unwrap() error {
	return e.Cause
}

// Message returns the text a view should show for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var rf *RequestFailed
	if errors.As(err, &rf) {
		return rf.Message
	}
	return err.Error()
}
