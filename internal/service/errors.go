package service

import "errors"

// Request-level failures surfaced to the caller. The api layer maps these to
// HTTP status codes.
var (
	ErrMissingField       = errors.New("customer name and table number are required")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrNoRestaurant       = errors.New("no restaurant found")
	ErrMissingItemID      = errors.New("each item must have a 'menu_item_id'")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotStaff           = errors.New("access denied: not a staff user")
	ErrUnauthenticated    = errors.New("unauthorized")
)
