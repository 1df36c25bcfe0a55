// Package position implements fractional position keys used to order
// bookmark siblings without renumbering them on insert.
//
// A key is a string of base-36 digits read as the fraction 0.d1d2d3...
// A valid key is non-empty and never ends with the zero digit, so every
// fraction has exactly one spelling and plain string comparison matches
// numeric order. Between any two distinct keys another key always exists.
//
// Two positions with equal keys are ordered by their suffix, a short
// per-entity string that keeps positions generated independently on
// different devices from colliding.
package position

import (
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	base   = len(digits)

	// SuffixLength is the length of suffixes produced by GenerateSuffix.
	SuffixLength = 22
)

// Position is an orderable, densely insertable location among siblings.
type Position struct {
	Key    string `json:"key"`
	Suffix string `json:"suffix,omitempty"`
}

// Initial returns the position used for the first element of an empty list.
func Initial(suffix string) Position {
	return Position{Key: midpoint("", ""), Suffix: suffix}
}

// After returns a position strictly greater than p.
func After(p Position, suffix string) (Position, error) {
	if !p.IsValid() {
		return Position{}, ErrInvalidPosition
	}
	return Position{Key: midpoint(p.Key, ""), Suffix: suffix}, nil
}

// Before returns a position strictly less than p.
func Before(p Position, suffix string) (Position, error) {
	if !p.IsValid() {
		return Position{}, ErrInvalidPosition
	}
	return Position{Key: midpoint("", p.Key), Suffix: suffix}, nil
}

// Between returns a position strictly between lo and hi. The keys of lo
// and hi must differ.
func Between(lo, hi Position, suffix string) (Position, error) {
	if !lo.IsValid() || !hi.IsValid() {
		return Position{}, ErrInvalidPosition
	}
	if lo.Key >= hi.Key {
		return Position{}, ErrPositionsOutOfOrder
	}
	return Position{Key: midpoint(lo.Key, hi.Key), Suffix: suffix}, nil
}

// IsValid reports whether p carries a well-formed key.
func (p Position) IsValid() bool {
	if p.Key == "" || p.Key[len(p.Key)-1] == digits[0] {
		return false
	}
	for i := 0; i < len(p.Key); i++ {
		if strings.IndexByte(digits, p.Key[i]) < 0 {
			return false
		}
	}
	return true
}

// Less orders positions by key, then by suffix.
func (p Position) Less(other Position) bool {
	if p.Key != other.Key {
		return p.Key < other.Key
	}
	return p.Suffix < other.Suffix
}

// Compare returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	switch {
	case p.Less(other):
		return -1
	case other.Less(p):
		return 1
	default:
		return 0
	}
}

func (p Position) String() string {
	if p.Suffix == "" {
		return p.Key
	}
	return p.Key + "/" + p.Suffix
}

// GenerateSuffix derives a stable suffix from the identity of the client
// that produced an entity and the entity's sync id.
func GenerateSuffix(cacheGUID, syncID string) string {
	sum := blake2b.Sum256([]byte(cacheGUID + syncID))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:SuffixLength]
}

// midpoint returns a key strictly between a and b. An empty a stands for
// zero and an empty b for one. Callers guarantee a < b.
func midpoint(a, b string) string {
	if b != "" {
		n := 0
		for n < len(b) && digitAt(a, n) == b[n] {
			n++
		}
		if n > 0 {
			return b[:n] + midpoint(tail(a, n), b[n:])
		}
	}

	da := 0
	if a != "" {
		da = strings.IndexByte(digits, a[0])
	}
	db := base
	if b != "" {
		db = strings.IndexByte(digits, b[0])
	}

	if db-da > 1 {
		return string(digits[(da+db)/2])
	}

	// the leading digits are adjacent
	if len(b) > 1 {
		return b[:1]
	}
	return string(digits[da]) + midpoint(tail(a, 1), "")
}

func digitAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return digits[0]
}

func tail(s string, n int) string {
	if n < len(s) {
		return s[n:]
	}
	return ""
}
