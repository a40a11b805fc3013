package gateway

import (
	model "storefront-engine/internal/models"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

// Gateway is the REST contract the engine consumes from the marketplace
// backend. Every response is gated on the backend's {success, data, error}
// envelope; implementations classify transport failures and HTTP 403 into
// the storeerrors sentinels so callers can branch on errors.Is.
type Gateway interface {
	// Identity
	RegisterGuest(guestID string) error
	GuestLogin(guestID string) (string, error)
	Login(username, password string) (string, error)
	Register(data RegistrationData) error
	Profile() (string, error)

	// Token lifecycle. SetToken installs the bearer token used on all
	// subsequent calls; ClearToken removes it.
	SetToken(token string)
	ClearToken()

	// Cart. GetCart returns the backend's bag representation:
	// storeID -> productID -> quantity.
	GetCart() (map[string]map[string]int, error)
	AddToCart(storeID, productID string, quantity int) error
	RemoveFromCart(storeID, productID string, quantity int) error
	GetProduct(productID string) (model.Product, error)

	// Pricing. BagDiscount returns the discount amount, not the
	// discounted total: discounted = original - discount.
	BagPrice(storeID string, quantities map[string]int) (float64, error)
	BagDiscount(storeID string, quantities map[string]int) (float64, error)
	ProductDiscountedPrice(storeID, productID string) (float64, error)

	// Bid negotiation. Approve/reject/counter are addressed server-side
	// by the (bidder, product) pair.
	SubmitBid(storeID, productID string, amount float64, details model.PurchaseDetails) error
	ProductBids(storeID, productID string) ([]model.Bid, error)
	ApproveBid(storeID, productID, bidderUsername string) error
	RejectBid(storeID, productID, bidderUsername string) error
	CounterBid(storeID, productID, bidderUsername string, counterAmount float64) error
	AcceptCounterOffer(storeID, productID string) error
	DeclineCounterOffer(storeID, productID string) error

	// Auctions
	AuctionStatus(storeID, productID string) (model.AuctionStatus, error)
	SubmitAuctionOffer(storeID, productID string, amount float64, details model.PurchaseDetails) error
}

// RegistrationData is the payload for creating a new account
type RegistrationData struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
