package domain

import "errors"

// ErrEmptyMatchValue is returned when a matching mode requires a non-empty
// prefix or pattern and none was configured.
var ErrEmptyMatchValue = errors.New("match value must not be empty")

// ErrMalformedPattern is returned at construction time when a regex pattern
// does not compile. It is never raised per-parameter.
var ErrMalformedPattern = errors.New("malformed pattern")

// ErrUnknownMode is returned when the configured sanitization mode is not
// one of the supported values.
var ErrUnknownMode = errors.New("unknown sanitization mode")

// ErrParameterGone is returned by an action when the targeted entry is no
// longer present in its containing collection. The processor records it as
// a non-fatal skip.
var ErrParameterGone = errors.New("parameter no longer present in collection")

// ErrModelNotFound is returned by model stores when the requested graph
// does not exist.
var ErrModelNotFound = errors.New("model not found")
