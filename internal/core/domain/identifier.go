package domain

import "errors"

var ErrInvalidID = errors.New("invalid identifier")

const idLength = 24

// IsValidID reports whether s is a well-formed store identifier: a
// 24-character hexadecimal string (the document store's native key format).
// Validation happens before any identifier is used to build a query.
func IsValidID(s string) bool {
	if len(s) != idLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
