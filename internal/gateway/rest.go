package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	model "storefront-engine/internal/models"
	"storefront-engine/internal/storeerrors"
)

// envelope is the backend's uniform response wrapper. Data is only decoded
// when Success is true.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// RestGateway implements Gateway against the marketplace REST backend
type RestGateway struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

// NewRestGateway creates a gateway for the backend at baseURL, e.g.
// "http://localhost:8080/api"
func NewRestGateway(baseURL string) *RestGateway {
	return &RestGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on all subsequent requests
func (g *RestGateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
}

// ClearToken removes the bearer token
func (g *RestGateway) ClearToken() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = ""
}

func (g *RestGateway) currentToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// do issues a request, gates the envelope on success, and decodes data into
// out when out is non-nil. Transport errors wrap ErrNetwork; HTTP 403 wraps
// ErrPermissionDenied; an unsuccessful envelope wraps ErrBackendRejected.
func (g *RestGateway) do(method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := g.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w: %v", method, path, storeerrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusForbidden:
		return fmt.Errorf("gateway: %s %s: %w", method, path, storeerrors.ErrPermissionDenied)
	case http.StatusNotFound:
		return fmt.Errorf("gateway: %s %s: %w", method, path, storeerrors.ErrNotFound)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("gateway: decode envelope from %s: %w", path, err)
	}
	if !env.Success {
		return fmt.Errorf("gateway: %s %s: %w: %s", method, path, storeerrors.ErrBackendRejected, env.Error)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("gateway: decode data from %s: %w", path, err)
		}
	}
	return nil
}

// RegisterGuest registers a fresh guest identity on the backend
func (g *RestGateway) RegisterGuest(guestID string) error {
	return g.do(http.MethodPost, "/users/register/guest", map[string]string{"username": guestID}, nil)
}

// GuestLogin exchanges a guest identity for a bearer token
func (g *RestGateway) GuestLogin(guestID string) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	if err := g.do(http.MethodPost, "/auth/guest-login", map[string]string{"guestId": guestID}, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

// Login authenticates a registered user and returns the bearer token
func (g *RestGateway) Login(username, password string) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := g.do(http.MethodPost, "/auth/login", payload, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

// Register creates a new account. It does not authenticate.
func (g *RestGateway) Register(data RegistrationData) error {
	return g.do(http.MethodPost, "/auth/register", data, nil)
}

// Profile returns the username the current token belongs to
func (g *RestGateway) Profile() (string, error) {
	var data struct {
		Username string `json:"username"`
	}
	if err := g.do(http.MethodGet, "/users/me", nil, &data); err != nil {
		return "", err
	}
	return data.Username, nil
}

// GetCart returns the backend bag representation: storeID -> productID -> qty
func (g *RestGateway) GetCart() (map[string]map[string]int, error) {
	var data struct {
		StoreBags map[string]struct {
			Products map[string]int `json:"products"`
		} `json:"storeBags"`
	}
	if err := g.do(http.MethodGet, "/users/cart", nil, &data); err != nil {
		return nil, err
	}
	bags := make(map[string]map[string]int, len(data.StoreBags))
	for storeID, bag := range data.StoreBags {
		if len(bag.Products) == 0 {
			continue
		}
		bags[storeID] = bag.Products
	}
	return bags, nil
}

// cartMutation is the shared payload of cart add/remove. The backend names
// the product field productName even though it carries the product ID.
type cartMutation struct {
	StoreID     string `json:"storeId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// AddToCart adds quantity units of a product to the caller's cart
func (g *RestGateway) AddToCart(storeID, productID string, quantity int) error {
	return g.do(http.MethodPost, "/users/cart/add", cartMutation{storeID, productID, quantity}, nil)
}

// RemoveFromCart removes quantity units of a product from the caller's cart
func (g *RestGateway) RemoveFromCart(storeID, productID string, quantity int) error {
	return g.do(http.MethodPost, "/users/cart/remove", cartMutation{storeID, productID, quantity}, nil)
}

// GetProduct resolves display metadata for a listing
func (g *RestGateway) GetProduct(productID string) (model.Product, error) {
	var data struct {
		ListingID   string   `json:"listingId"`
		ProductName string   `json:"productName"`
		Price       float64  `json:"price"`
		StoreID     string   `json:"storeId"`
		Images      []string `json:"images"`
	}
	if err := g.do(http.MethodGet, "/products/listing/"+productID, nil, &data); err != nil {
		return model.Product{}, err
	}
	product := model.Product{
		ProductID: productID,
		StoreID:   data.StoreID,
		Title:     data.ProductName,
		Price:     data.Price,
	}
	if len(data.Images) > 0 {
		product.Image = data.Images[0]
	}
	return product, nil
}

// BagPrice returns the original total for a store bag
func (g *RestGateway) BagPrice(storeID string, quantities map[string]int) (float64, error) {
	var total float64
	path := fmt.Sprintf("/stores/%s/bag/price", storeID)
	if err := g.do(http.MethodPost, path, quantities, &total); err != nil {
		return 0, err
	}
	return total, nil
}

// BagDiscount returns the discount amount for a store bag. The discounted
// total is original minus this value.
func (g *RestGateway) BagDiscount(storeID string, quantities map[string]int) (float64, error) {
	var discount float64
	path := fmt.Sprintf("/stores/%s/bag/discounted-price", storeID)
	if err := g.do(http.MethodPost, path, quantities, &discount); err != nil {
		return 0, err
	}
	return discount, nil
}

// ProductDiscountedPrice returns the discounted unit price for one product
func (g *RestGateway) ProductDiscountedPrice(storeID, productID string) (float64, error) {
	var price float64
	path := fmt.Sprintf("/stores/%s/products/%s/discounted-price", storeID, productID)
	if err := g.do(http.MethodGet, path, nil, &price); err != nil {
		return 0, err
	}
	return price, nil
}

// SubmitBid submits a buyer's bid on a BID-type listing
func (g *RestGateway) SubmitBid(storeID, productID string, amount float64, details model.PurchaseDetails) error {
	payload := map[string]any{
		"storeId":         storeID,
		"productId":       productID,
		"bidAmount":       amount,
		"shippingAddress": details.ShippingAddress,
		"paymentDetails":  details.PaymentDetails,
	}
	return g.do(http.MethodPost, "/purchases/bid/submit", payload, nil)
}

// ProductBids lists all bids on a product
func (g *RestGateway) ProductBids(storeID, productID string) ([]model.Bid, error) {
	var bids []model.Bid
	path := fmt.Sprintf("/purchases/bids/%s/%s", storeID, productID)
	if err := g.do(http.MethodGet, path, nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// bidDecision is the shared payload of bid approve/reject/counter
type bidDecision struct {
	StoreID        string  `json:"storeId"`
	ProductID      string  `json:"productId"`
	BidderUsername string  `json:"bidderUsername"`
	Approved       bool    `json:"approved,omitempty"`
	CounterAmount  float64 `json:"counterAmount,omitempty"`
}

// ApproveBid approves a bidder's pending bid on a product
func (g *RestGateway) ApproveBid(storeID, productID, bidderUsername string) error {
	payload := bidDecision{StoreID: storeID, ProductID: productID, BidderUsername: bidderUsername, Approved: true}
	return g.do(http.MethodPost, "/purchases/bid/approve", payload, nil)
}

// RejectBid rejects a bidder's pending bid on a product
func (g *RestGateway) RejectBid(storeID, productID, bidderUsername string) error {
	payload := bidDecision{StoreID: storeID, ProductID: productID, BidderUsername: bidderUsername}
	return g.do(http.MethodPost, "/purchases/bid/reject", payload, nil)
}

// CounterBid proposes a counter-offer on a bidder's pending bid
func (g *RestGateway) CounterBid(storeID, productID, bidderUsername string, counterAmount float64) error {
	payload := bidDecision{StoreID: storeID, ProductID: productID, BidderUsername: bidderUsername, CounterAmount: counterAmount}
	return g.do(http.MethodPost, "/purchases/bid/counter", payload, nil)
}

// AcceptCounterOffer accepts the seller's counter-offer on the caller's bid
func (g *RestGateway) AcceptCounterOffer(storeID, productID string) error {
	payload := map[string]string{"storeId": storeID, "productId": productID}
	return g.do(http.MethodPost, "/purchases/bid/counter/accept", payload, nil)
}

// DeclineCounterOffer declines the seller's counter-offer on the caller's bid
func (g *RestGateway) DeclineCounterOffer(storeID, productID string) error {
	payload := map[string]string{"storeId": storeID, "productId": productID}
	return g.do(http.MethodPost, "/purchases/bid/counter/decline", payload, nil)
}

// AuctionStatus fetches the current auction snapshot. The path carries a
// placeholder user segment; the server identifies the caller by token.
func (g *RestGateway) AuctionStatus(storeID, productID string) (model.AuctionStatus, error) {
	var data struct {
		StartingPrice   float64 `json:"startingPrice"`
		CurrentMaxOffer float64 `json:"currentMaxOffer"`
		TimeLeftMillis  int64   `json:"timeLeftMillis"`
	}
	path := fmt.Sprintf("/purchases/auction/status/0/%s/%s", storeID, productID)
	if err := g.do(http.MethodGet, path, nil, &data); err != nil {
		return model.AuctionStatus{}, err
	}
	return model.AuctionStatus{
		StoreID:         storeID,
		ProductID:       productID,
		StartingPrice:   data.StartingPrice,
		CurrentMaxOffer: data.CurrentMaxOffer,
		TimeLeftMillis:  data.TimeLeftMillis,
		FetchedAt:       time.Now(),
		Ended:           data.TimeLeftMillis <= 0,
	}, nil
}

// SubmitAuctionOffer submits a buyer's offer on a live auction
func (g *RestGateway) SubmitAuctionOffer(storeID, productID string, amount float64, details model.PurchaseDetails) error {
	payload := map[string]any{
		"storeId":         storeID,
		"productId":       productID,
		"offerAmount":     amount,
		"shippingAddress": details.ShippingAddress,
		"paymentDetails":  details.PaymentDetails,
	}
	return g.do(http.MethodPost, "/purchases/auction/offer", payload, nil)
}
