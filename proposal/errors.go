package proposal

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPendingProposal is returned when an operation requires a stored
	// proposal and the slot is empty.
	ErrNoPendingProposal = errors.New("no pending proposal")

	// ErrProposalExists is returned by Create when the slot is occupied and
	// the caller did not confirm replacement.
	ErrProposalExists = errors.New("a pending proposal already exists")
)

// InsufficientSignaturesError is returned by Send when the threshold has not
// been reached yet. The stored proposal is retained so the caller can retry
// after collecting more signatures.
type InsufficientSignaturesError struct {
	Have int
	Need int
}

func (e *InsufficientSignaturesError) Error() string {
	return fmt.Sprintf("insufficient signatures: have %d, need %d", e.Have, e.Need)
}
