// Package trace tags a calculator session, and each calculation inside it,
// on the context so that every log line can be correlated.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type (
	sessionKey     struct{}
	calculationKey struct{}
)

// New starts a session trace with a fresh random id.
func New(parent context.Context) (context.Context, string) {
	return NewWithID(parent, GenerateID())
}

// NewWithID starts a session trace under a caller-supplied id, such as one
// passed with --traceid. An empty id means "make one up".
func NewWithID(parent context.Context, id string) (context.Context, string) {
	if id == "" {
		id = GenerateID()
	}
	return context.WithValue(parent, sessionKey{}, id), id
}

// From reports the session id on ctx. Empty ids count as absent.
func From(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(sessionKey{}).(string)
	return s, ok && s != ""
}

// WithCalculation marks ctx as belonging to the n-th calculation (1-based)
// of the session.
func WithCalculation(parent context.Context, n int) context.Context {
	return context.WithValue(parent, calculationKey{}, n)
}

// CalculationFrom returns the calculation index stored by WithCalculation.
func CalculationFrom(ctx context.Context) (int, bool) {
	n, ok := ctx.Value(calculationKey{}).(int)
	return n, ok
}

// GenerateID returns 32 lowercase hex characters.
func GenerateID() string {
	var b [16]byte
	_, _ = rand.Read(b[:]) // zeros on failure
	return hex.EncodeToString(b[:])
}
