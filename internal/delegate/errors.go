package delegate

import "errors"

var (
	// ErrUpstream means the completion service could not produce an answer:
	// it was unreachable, returned an error status, timed out or sent nothing.
	ErrUpstream = errors.New("completion service failed")

	// ErrMalformedUpstreamResponse means the completion arrived but is not the
	// JSON object the prompt asks for.
	ErrMalformedUpstreamResponse = errors.New("completion is not a valid translation object")
)
