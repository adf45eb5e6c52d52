package fetch

import "errors"

// Load failures fall into three classes. All of them surface to the user as
// a single generic error state; the distinction exists for logging and tests.
var (
	// ErrNetwork means the request could not complete at the transport level.
	ErrNetwork = errors.New("listing request failed")

	// ErrBadResponse means the listing endpoint answered with a non-success
	// status code.
	ErrBadResponse = errors.New("listing returned an error status")

	// ErrMalformedPayload means the response body did not carry the expected
	// structure. It is handled exactly like ErrBadResponse.
	ErrMalformedPayload = errors.New("listing payload is malformed")
)
