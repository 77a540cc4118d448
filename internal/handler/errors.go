package handler

import (
	"errors"

	"itexe-marketplace-api/internal/service"
	"itexe-marketplace-api/pkg/apierror"
)

// domainError maps service errors onto API errors. Unknown errors pass
// through and surface as a generic internal error.
func domainError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return apierror.Unauthorized("")
	case errors.Is(err, service.ErrNotListingOwner):
		return apierror.Forbidden("You can only update your own listings")
	case errors.Is(err, service.ErrListingNotFound):
		return apierror.NotFound("Listing not found")
	case errors.Is(err, service.ErrListingSold):
		return apierror.Conflict("This item has already been sold")
	case errors.Is(err, service.ErrAlreadyInCart):
		return apierror.Conflict("This unique item is already in your cart")
	case errors.Is(err, service.ErrInvalidListing):
		return apierror.BadRequest(err.Error())
	case errors.Is(err, service.ErrDuplicateName):
		return apierror.Conflict("A user with this name already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return apierror.Unauthorized("Invalid credentials")
	default:
		return err
	}
}
