package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	cart "storefront-engine/internal/cartService"
	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	negotiation "storefront-engine/internal/negotiationService"
	"storefront-engine/internal/notify"
	pricing "storefront-engine/internal/pricingService"
	"storefront-engine/internal/server"
	session "storefront-engine/internal/sessionService"

	"github.com/gin-gonic/gin"
)

// fakeProduct is one listing in the fake marketplace catalog
type fakeProduct struct {
	StoreID string
	Title   string
	Price   float64
}

// fakeMarketplace is an in-memory stand-in for the marketplace backend. It
// speaks the backend's {success, data, error} envelope and bearer-token
// authentication so the engine exercises its real REST gateway end to end.
type fakeMarketplace struct {
	mu        sync.Mutex
	nextToken int

	passwords map[string]string                    // username -> password
	tokens    map[string]string                    // token -> username
	carts     map[string]map[string]map[string]int // username -> storeID -> productID -> qty
	products  map[string]fakeProduct               // productID -> listing
	discounts map[string]float64                   // storeID -> bag discount fraction
	bids      map[string][]model.Bid               // storeID/productID -> bids
	auction   struct {
		MaxOffer float64
		TimeLeft int64
	}
}

func newFakeMarketplace() *fakeMarketplace {
	f := &fakeMarketplace{
		passwords: make(map[string]string),
		tokens:    make(map[string]string),
		carts:     make(map[string]map[string]map[string]int),
		products:  make(map[string]fakeProduct),
		discounts: make(map[string]float64),
		bids:      make(map[string][]model.Bid),
	}
	f.auction.MaxOffer = 50
	f.auction.TimeLeft = 60_000
	return f
}

func (f *fakeMarketplace) addProduct(productID, storeID, title string, price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[productID] = fakeProduct{StoreID: storeID, Title: title, Price: price}
}

func (f *fakeMarketplace) setDiscount(storeID string, fraction float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discounts[storeID] = fraction
}

// cartOf returns a copy of a user's backend cart
func (f *fakeMarketplace) cartOf(username string) map[string]map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]map[string]int)
	for storeID, bag := range f.carts[username] {
		out[storeID] = make(map[string]int)
		for productID, qty := range bag {
			out[storeID][productID] = qty
		}
	}
	return out
}

func writeSuccess(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, message string) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}

func (f *fakeMarketplace) caller(r *http.Request) (string, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	username, ok := f.tokens[token]
	return username, ok
}

func (f *fakeMarketplace) issueToken(username string) string {
	f.nextToken++
	token := fmt.Sprintf("token-%d", f.nextToken)
	f.tokens[token] = username
	return token
}

func decodeBody(r *http.Request, out any) {
	_ = json.NewDecoder(r.Body).Decode(out)
}

func (f *fakeMarketplace) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case path == "/users/register/guest":
		var req struct {
			Username string `json:"username"`
		}
		decodeBody(r, &req)
		f.passwords[req.Username] = ""
		writeSuccess(w, nil)

	case path == "/auth/guest-login":
		var req struct {
			GuestID string `json:"guestId"`
		}
		decodeBody(r, &req)
		if _, ok := f.passwords[req.GuestID]; !ok {
			writeFailure(w, "unknown guest")
			return
		}
		writeSuccess(w, map[string]string{"token": f.issueToken(req.GuestID)})

	case path == "/auth/login":
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		decodeBody(r, &req)
		if pw, ok := f.passwords[req.Username]; !ok || pw != req.Password {
			writeFailure(w, "invalid credentials")
			return
		}
		writeSuccess(w, map[string]string{"token": f.issueToken(req.Username)})

	case path == "/auth/register":
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		decodeBody(r, &req)
		if _, ok := f.passwords[req.Username]; ok {
			writeFailure(w, "username taken")
			return
		}
		f.passwords[req.Username] = req.Password
		writeSuccess(w, nil)

	case path == "/users/me":
		username, ok := f.caller(r)
		if !ok {
			writeFailure(w, "not authenticated")
			return
		}
		writeSuccess(w, map[string]string{"username": username})

	case path == "/users/cart":
		username, ok := f.caller(r)
		if !ok {
			writeFailure(w, "not authenticated")
			return
		}
		bags := make(map[string]map[string]map[string]int)
		for storeID, bag := range f.carts[username] {
			bags[storeID] = map[string]map[string]int{"products": bag}
		}
		writeSuccess(w, map[string]any{"storeBags": bags})

	case path == "/users/cart/add" || path == "/users/cart/remove":
		username, ok := f.caller(r)
		if !ok {
			writeFailure(w, "not authenticated")
			return
		}
		var req struct {
			StoreID     string `json:"storeId"`
			ProductName string `json:"productName"`
			Quantity    int    `json:"quantity"`
		}
		decodeBody(r, &req)
		if f.carts[username] == nil {
			f.carts[username] = make(map[string]map[string]int)
		}
		if f.carts[username][req.StoreID] == nil {
			f.carts[username][req.StoreID] = make(map[string]int)
		}
		if path == "/users/cart/add" {
			f.carts[username][req.StoreID][req.ProductName] += req.Quantity
		} else {
			f.carts[username][req.StoreID][req.ProductName] -= req.Quantity
			if f.carts[username][req.StoreID][req.ProductName] <= 0 {
				delete(f.carts[username][req.StoreID], req.ProductName)
			}
		}
		writeSuccess(w, nil)

	case len(parts) == 3 && parts[0] == "products" && parts[1] == "listing":
		product, ok := f.products[parts[2]]
		if !ok {
			writeFailure(w, "listing not found")
			return
		}
		writeSuccess(w, map[string]any{
			"listingId":   parts[2],
			"productName": product.Title,
			"price":       product.Price,
			"storeId":     product.StoreID,
		})

	case len(parts) == 4 && parts[0] == "stores" && parts[2] == "bag" && parts[3] == "price":
		var quantities map[string]int
		decodeBody(r, &quantities)
		writeSuccess(w, f.bagTotal(quantities))

	case len(parts) == 4 && parts[0] == "stores" && parts[2] == "bag" && parts[3] == "discounted-price":
		var quantities map[string]int
		decodeBody(r, &quantities)
		writeSuccess(w, f.bagTotal(quantities)*f.discounts[parts[1]])

	case path == "/purchases/bid/submit":
		username, ok := f.caller(r)
		if !ok {
			writeFailure(w, "not authenticated")
			return
		}
		var req struct {
			StoreID   string  `json:"storeId"`
			ProductID string  `json:"productId"`
			BidAmount float64 `json:"bidAmount"`
		}
		decodeBody(r, &req)
		key := req.StoreID + "/" + req.ProductID
		f.bids[key] = append(f.bids[key], model.Bid{
			BidderID:  username,
			Amount:    req.BidAmount,
			Status:    model.BidPending,
			CreatedAt: time.Now().UTC(),
		})
		writeSuccess(w, nil)

	case len(parts) == 4 && parts[0] == "purchases" && parts[1] == "bids":
		writeSuccess(w, f.bids[parts[2]+"/"+parts[3]])

	case path == "/purchases/bid/approve" || path == "/purchases/bid/reject":
		var req struct {
			StoreID        string `json:"storeId"`
			ProductID      string `json:"productId"`
			BidderUsername string `json:"bidderUsername"`
		}
		decodeBody(r, &req)
		status := model.BidRejected
		if path == "/purchases/bid/approve" {
			status = model.BidApproved
		}
		if !f.decideBid(req.StoreID, req.ProductID, req.BidderUsername, status) {
			writeFailure(w, "bid not found")
			return
		}
		writeSuccess(w, nil)

	case len(parts) == 6 && parts[0] == "purchases" && parts[1] == "auction" && parts[2] == "status":
		writeSuccess(w, map[string]any{
			"startingPrice":   10,
			"currentMaxOffer": f.auction.MaxOffer,
			"timeLeftMillis":  f.auction.TimeLeft,
		})

	case path == "/purchases/auction/offer":
		var req struct {
			OfferAmount float64 `json:"offerAmount"`
		}
		decodeBody(r, &req)
		if req.OfferAmount <= f.auction.MaxOffer {
			writeFailure(w, "offer too low")
			return
		}
		f.auction.MaxOffer = req.OfferAmount
		writeSuccess(w, nil)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// bagTotal prices a store bag against the catalog. Callers hold the lock.
func (f *fakeMarketplace) bagTotal(quantities map[string]int) float64 {
	var total float64
	for productID, qty := range quantities {
		total += f.products[productID].Price * float64(qty)
	}
	return total
}

// decideBid marks a bid's outcome. Callers hold the lock.
func (f *fakeMarketplace) decideBid(storeID, productID, bidder string, status model.BidStatus) bool {
	key := storeID + "/" + productID
	for i, bid := range f.bids[key] {
		if bid.BidderID == bidder {
			f.bids[key][i].Status = status
			return true
		}
	}
	return false
}

// testStack is the fully wired engine facade over a fake marketplace
type testStack struct {
	Router  *gin.Engine
	Backend *fakeMarketplace
	Session *session.SessionService
	Broker  *notify.Broker
}

// SetupTestStack wires the real engine services through the real REST
// gateway against a fake marketplace backend
func SetupTestStack(t *testing.T) *testStack {
	gin.SetMode(gin.TestMode)

	backend := newFakeMarketplace()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	gw := gateway.NewRestGateway(srv.URL)
	pricingSvc := pricing.NewPricingService(gw)
	cartSvc := cart.NewCartService(gw, pricingSvc)
	sessionSvc := session.NewSessionService(gw, cartSvc, session.NewMemoryTokenStore())
	negotiationSvc := negotiation.NewNegotiationService(gw)
	t.Cleanup(negotiationSvc.Close)
	broker := notify.NewBroker()
	t.Cleanup(broker.Close)

	if err := sessionSvc.Initialize(); err != nil {
		t.Fatalf("failed to initialize session: %v", err)
	}

	router := server.SetupRouter(server.Dependencies{
		Session:      sessionSvc,
		Cart:         cartSvc,
		Negotiation:  negotiationSvc,
		Notification: broker,
	})
	return &testStack{Router: router, Backend: backend, Session: sessionSvc, Broker: broker}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the envelope response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
