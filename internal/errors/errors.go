package errors

import "errors"

// Request-local error taxonomy. Services wrap these sentinels with a
// human-readable reason; handlers map them onto HTTP status codes.

var ErrUnauthorized = errors.New("user is not authorized")
var ErrForbidden = errors.New("operation is forbidden for user")
var ErrNotFound = errors.New("requested entity was not found")
var ErrInvalidArgument = errors.New("invalid argument")
