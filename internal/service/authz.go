package service

import (
	"github.com/google/uuid"

	"github.com/Rinde17/stocky/pkg/errors"
)

// Owned is any resource with a single owning user.
type Owned interface {
	Owner() uuid.UUID
}

// AssertOwnership is the single ownership check used before every mutation:
// the acting user must be the resource owner, otherwise Forbidden. The error
// carries no resource detail.
func AssertOwnership(resource Owned, actingUserID uuid.UUID) error {
	if resource.Owner() != actingUserID {
		return errors.NewForbidden()
	}
	return nil
}
