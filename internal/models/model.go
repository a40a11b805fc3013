package models

import "time"

// SessionKind distinguishes an anonymous guest from a logged-in user
type SessionKind string

const (
	SessionGuest         SessionKind = "GUEST"
	SessionAuthenticated SessionKind = "AUTHENTICATED"
)

// Session represents the current actor identity. Exactly one session is
// active at a time; switching kinds invalidates the previous token.
type Session struct {
	Kind       SessionKind `json:"kind"`
	Identifier string      `json:"identifier"` // guest UUID or username
	Token      string      `json:"-"`
}

// IsGuest reports whether the session belongs to an anonymous guest identity
func (s Session) IsGuest() bool {
	return s.Kind == SessionGuest
}

// Product is the display metadata resolved for a cart line
type Product struct {
	ProductID string  `json:"product_id"`
	StoreID   string  `json:"store_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// StoreBag is the per-store slice of the cart as the backend reports it:
// productID -> quantity, every quantity >= 1
type StoreBag struct {
	StoreID    string         `json:"store_id"`
	Quantities map[string]int `json:"quantities"`
}

// CartLine is the denormalized, UI-facing cart row after price
// reconciliation. EffectivePrice <= UnitPrice always holds, and
// HasDiscount is true exactly when EffectivePrice < UnitPrice.
type CartLine struct {
	ProductID      string  `json:"product_id"`
	StoreID        string  `json:"store_id"`
	Quantity       int     `json:"quantity"`
	Title          string  `json:"title"`
	UnitPrice      float64 `json:"unit_price"`
	Image          string  `json:"image"`
	EffectivePrice float64 `json:"effective_price"`
	Savings        float64 `json:"savings"` // per unit
	HasDiscount    bool    `json:"has_discount"`
}

// BidStatus is the lifecycle state of a buyer's bid
type BidStatus string

const (
	BidPending   BidStatus = "PENDING"
	BidApproved  BidStatus = "APPROVED"
	BidRejected  BidStatus = "REJECTED"
	BidCountered BidStatus = "COUNTERED"
)

// Terminal reports whether no further transition is allowed from the status
func (s BidStatus) Terminal() bool {
	return s == BidApproved || s == BidRejected
}

// Bid represents a buyer's price offer on a BID-type listing. Transitions
// are one-directional: Pending -> {Approved, Rejected, Countered}.
type Bid struct {
	BidID         string    `json:"bid_id"`
	StoreID       string    `json:"store_id"`
	ProductID     string    `json:"product_id"`
	BidderID      string    `json:"bidder_id"`
	Amount        float64   `json:"amount"`
	Status        BidStatus `json:"status"`
	CounterAmount float64   `json:"counter_amount,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuctionStatus is a snapshot of a live auction taken at FetchedAt.
// Remaining time is derived client-side from TimeLeftMillis and FetchedAt;
// Ended latches true and never reverts.
type AuctionStatus struct {
	StoreID         string    `json:"store_id"`
	ProductID       string    `json:"product_id"`
	StartingPrice   float64   `json:"starting_price"`
	CurrentMaxOffer float64   `json:"current_max_offer"`
	TimeLeftMillis  int64     `json:"time_left_millis"`
	FetchedAt       time.Time `json:"fetched_at"`
	Ended           bool      `json:"ended"`
}

// Remaining returns the time left at the given instant, clamped to zero
func (a AuctionStatus) Remaining(now time.Time) int64 {
	left := a.TimeLeftMillis - now.Sub(a.FetchedAt).Milliseconds()
	if left < 0 {
		return 0
	}
	return left
}

// Notification is an async event delivered to a user. Read is monotonic.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
	StoreID   string    `json:"store_id,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
}

// PurchaseDetails carries the opaque checkout fields every negotiation
// submission requires
type PurchaseDetails struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentDetails  string `json:"payment_details"`
}
