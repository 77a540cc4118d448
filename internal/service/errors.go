package service

import "errors"

// Domain errors returned by the marketplace services. Every rejected
// mutation is a no-op reported through one of these; none of them is ever
// fatal to the process.
var (
	// ErrInvalidCredentials is returned by login when no account can be
	// adopted (empty roster in this demo's semantics).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateName is returned by registration when the requested name
	// case-insensitively collides with an existing identity.
	ErrDuplicateName = errors.New("a user with this name already exists")

	// ErrNotAuthenticated is returned when an operation requires a signed-in
	// identity and the session is anonymous.
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrInvalidListing is returned when a listing draft fails validation.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrListingNotFound is returned when no listing matches the given id.
	ErrListingNotFound = errors.New("listing not found")

	// ErrNotListingOwner is returned when an identity tries to update a
	// listing posted by someone else.
	ErrNotListingOwner = errors.New("listing belongs to another seller")

	// ErrListingSold is returned when an operation is not possible on a
	// sold listing: adding it to the cart, or flipping it back to Available.
	ErrListingSold = errors.New("listing is sold")

	// ErrAlreadyInCart is returned when the cart already holds the listing.
	// The cart is unchanged; each listing is unique stock of one.
	ErrAlreadyInCart = errors.New("listing already in cart")
)
