package utils

import "github.com/google/uuid"

// MaxTraceIDLength bounds client supplied trace IDs.
const MaxTraceIDLength = 128

// NewTraceID returns a UUIDv7, so IDs sort by creation time in the logs.
// A random v4 is used when the v7 clock source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// IsTraceID reports whether id may be echoed in a response header and
// written to the logs as is: 1 to [MaxTraceIDLength] characters from
// [A-Za-z0-9._:-].
func IsTraceID(id string) bool {
	if id == "" || len(id) > MaxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return false
		}
	}
	return true
}
