package service

import (
	"errors"
	"fmt"

	"vanadhikar_backend/internals/features/claims/model"
)

// Sentinel domain errors. Controllers map these to HTTP statuses locally;
// nothing bubbles to a global handler.
var (
	// Valid actor, wrong jurisdiction. Deliberately a 403 with an
	// out-of-jurisdiction message rather than a 404: officials of the right
	// role are allowed to learn the claim exists.
	ErrAccessDenied = errors.New("claim is outside your jurisdiction")

	ErrClaimNotFound = errors.New("claim not found")

	// Another officer's transition landed between our read and write.
	ErrStaleWrite = errors.New("claim was modified concurrently, please reload and retry")
)

// InvalidStateError: the action exists but the claim is not in a status it
// may leave from (e.g. forwarding an unmapped claim).
type InvalidStateError struct {
	Action model.ClaimAction
	From   model.ClaimStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s a claim in status %q", e.Action, e.From)
}

// ActiveClaimError: the claimant already has a claim in the active set.
// Carries the conflicting claim so the client can render it.
type ActiveClaimError struct {
	Existing *model.Claim
}

func (e *ActiveClaimError) Error() string {
	return fmt.Sprintf("claimant already has claim %s in status %q", e.Existing.ClaimFraPattaID, e.Existing.ClaimStatus)
}
