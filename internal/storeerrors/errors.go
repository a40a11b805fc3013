package storeerrors

import "errors"

// Gateway-level errors
var (
	ErrNetwork          = errors.New("network failure")
	ErrPermissionDenied = errors.New("insufficient permission")
	ErrNotFound         = errors.New("not found")
	ErrBackendRejected  = errors.New("backend rejected request")
)

// Local validation errors, raised before any network call
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidLogin = errors.New("missing username or password")
)

// Negotiation state errors
var (
	ErrOfferTooLow   = errors.New("offer does not exceed current maximum")
	ErrBidNotPending = errors.New("bid is no longer pending")
	ErrBidNotCounter = errors.New("bid has no counter-offer to answer")
	ErrBidInFlight   = errors.New("another action on this bid is in flight")
	ErrBidNotFound   = errors.New("bid not found")
	ErrAuctionEnded  = errors.New("auction has ended")
)
