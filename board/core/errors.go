// ABOUTME: Sentinel and typed errors for card validation and lookup.
// ABOUTME: Callers match them with errors.Is / errors.As.
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle indicates a card save was attempted without a title.
	ErrEmptyTitle = errors.New("please enter a title for the card")

	// ErrInvalidStage indicates a status outside the five pipeline stages.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrInvalidPlatform indicates an unsupported platform code.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidVirality indicates a virality score outside 0..10.
	ErrInvalidVirality = errors.New("virality score must be between 0 and 10")

	// ErrNegativeAnalytics indicates a negative engagement counter.
	ErrNegativeAnalytics = errors.New("analytics counters must not be negative")
)

// CardNotFoundError indicates the referenced card doesn't exist.
type CardNotFoundError struct {
	CardID string
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("card not found: %s", e.CardID)
}

// IsNotFound reports whether err is (or wraps) a CardNotFoundError.
func IsNotFound(err error) bool {
	var nf *CardNotFoundError
	return errors.As(err, &nf)
}
