package config

import "errors"

// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
// configuration violates a validation rule (for example, PORT unset or
// not a number). The wrapped error lists every violation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrInvalidDocsRoute is reported for a docs route that does not start with
// "/" or that would shadow another route group.
var ErrInvalidDocsRoute = errors.New("docs route must start with / and must not overlap /, /api, /api/auth, /api/users or /metrics")
