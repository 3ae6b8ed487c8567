package usecase

import (
	"errors"
	"fmt"
)

// ErrUpstream marks failures of a collaborator (document store, checkout
// provider). Nothing is retried; the caller decides.
var ErrUpstream = errors.New("upstream failure")

func upstreamError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
