package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	model "storefront-engine/internal/models"
	"storefront-engine/internal/storeerrors"

	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal envelope-speaking handler for one expected request
type fakeBackend struct {
	t          *testing.T
	method     string
	path       string
	wantAuth   string
	wantBody   map[string]any
	statusCode int
	respond    string // full response body, already envelope-wrapped
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	require.Equal(f.t, f.method, r.Method)
	require.Equal(f.t, f.path, r.URL.Path)
	if f.wantAuth != "" {
		require.Equal(f.t, f.wantAuth, r.Header.Get("Authorization"))
	}
	if f.wantBody != nil {
		var got map[string]any
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(f.t, f.wantBody, got)
	}
	if f.statusCode != 0 {
		w.WriteHeader(f.statusCode)
	}
	_, _ = w.Write([]byte(f.respond))
}

func newGateway(t *testing.T, backend *fakeBackend) *RestGateway {
	backend.t = t
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return NewRestGateway(srv.URL)
}

// Tests envelope decoding and error classification in the request helper
func TestRestGateway_EnvelopeHandling(t *testing.T) {
	t.Run("success_envelope_decodes_data", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:   http.MethodPost,
			path:     "/auth/login",
			wantBody: map[string]any{"username": "alice", "password": "hunter2"},
			respond:  `{"success": true, "data": {"token": "jwt-abc"}}`,
		})

		token, err := gw.Login("alice", "hunter2")
		require.NoError(t, err)
		require.Equal(t, "jwt-abc", token)
	})

	t.Run("unsuccessful_envelope_maps_to_backend_rejected", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:  http.MethodPost,
			path:    "/auth/login",
			respond: `{"success": false, "error": "invalid credentials"}`,
		})

		_, err := gw.Login("alice", "wrong")
		require.Error(t, err)
		require.True(t, errors.Is(err, storeerrors.ErrBackendRejected))
		require.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("http_403_maps_to_permission_denied", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:     http.MethodGet,
			path:       "/users/me",
			statusCode: http.StatusForbidden,
		})

		_, err := gw.Profile()
		require.Error(t, err)
		require.True(t, errors.Is(err, storeerrors.ErrPermissionDenied))
	})

	t.Run("http_404_maps_to_not_found", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:     http.MethodGet,
			path:       "/products/listing/ghost",
			statusCode: http.StatusNotFound,
		})

		_, err := gw.GetProduct("ghost")
		require.Error(t, err)
		require.True(t, errors.Is(err, storeerrors.ErrNotFound))
	})

	t.Run("unreachable_backend_maps_to_network_error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // nothing listens anymore

		gw := NewRestGateway(srv.URL)
		err := gw.RegisterGuest("guest-1")
		require.Error(t, err)
		require.True(t, errors.Is(err, storeerrors.ErrNetwork))
	})
}

// Tests bearer-token handling
func TestRestGateway_Token(t *testing.T) {
	t.Run("set_token_sent_as_bearer", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:   http.MethodGet,
			path:     "/users/me",
			wantAuth: "Bearer jwt-abc",
			respond:  `{"success": true, "data": {"username": "alice"}}`,
		})
		gw.SetToken("jwt-abc")

		username, err := gw.Profile()
		require.NoError(t, err)
		require.Equal(t, "alice", username)
	})

	t.Run("cleared_token_omits_header", func(t *testing.T) {
		backend := &fakeBackend{
			method:  http.MethodGet,
			path:    "/users/me",
			respond: `{"success": true, "data": {"username": "alice"}}`,
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Empty(t, r.Header.Get("Authorization"))
			backend.ServeHTTP(w, r)
		}))
		t.Cleanup(srv.Close)
		backend.t = t

		gw := NewRestGateway(srv.URL)
		gw.SetToken("jwt-abc")
		gw.ClearToken()

		_, err := gw.Profile()
		require.NoError(t, err)
	})
}

// Tests the cart endpoints and their backend field naming
func TestRestGateway_Cart(t *testing.T) {
	t.Run("get_cart_flattens_store_bags", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method: http.MethodGet,
			path:   "/users/cart",
			respond: `{"success": true, "data": {"storeBags": {
				"s1": {"products": {"a": 2, "b": 1}},
				"s2": {"products": {}}
			}}}`,
		})

		bags, err := gw.GetCart()
		require.NoError(t, err)
		require.Equal(t, map[string]map[string]int{
			"s1": {"a": 2, "b": 1},
		}, bags, "empty store bags must be dropped")
	})

	t.Run("add_sends_product_id_in_productName_field", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:   http.MethodPost,
			path:     "/users/cart/add",
			wantBody: map[string]any{"storeId": "s1", "productName": "a", "quantity": float64(2)},
			respond:  `{"success": true}`,
		})

		require.NoError(t, gw.AddToCart("s1", "a", 2))
	})

	t.Run("remove_uses_same_payload_shape", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:   http.MethodPost,
			path:     "/users/cart/remove",
			wantBody: map[string]any{"storeId": "s1", "productName": "a", "quantity": float64(1)},
			respond:  `{"success": true}`,
		})

		require.NoError(t, gw.RemoveFromCart("s1", "a", 1))
	})
}

// Tests listing metadata resolution
func TestRestGateway_GetProduct(t *testing.T) {
	gw := newGateway(t, &fakeBackend{
		method: http.MethodGet,
		path:   "/products/listing/a",
		respond: `{"success": true, "data": {
			"listingId": "a", "productName": "Walnut Desk", "price": 120,
			"storeId": "s1", "images": ["desk.jpg", "desk-2.jpg"]
		}}`,
	})

	product, err := gw.GetProduct("a")
	require.NoError(t, err)
	require.Equal(t, "Walnut Desk", product.Title)
	require.Equal(t, 120.0, product.Price)
	require.Equal(t, "s1", product.StoreID)
	require.Equal(t, "desk.jpg", product.Image, "first image wins")
}

// Tests the pricing endpoints
func TestRestGateway_Pricing(t *testing.T) {
	t.Run("bag_price", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:   http.MethodPost,
			path:     "/stores/s1/bag/price",
			wantBody: map[string]any{"a": float64(2)},
			respond:  `{"success": true, "data": 240}`,
		})

		total, err := gw.BagPrice("s1", map[string]int{"a": 2})
		require.NoError(t, err)
		require.Equal(t, 240.0, total)
	})

	t.Run("bag_discount_returns_discount_amount", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:  http.MethodPost,
			path:    "/stores/s1/bag/discounted-price",
			respond: `{"success": true, "data": 24}`,
		})

		discount, err := gw.BagDiscount("s1", map[string]int{"a": 2})
		require.NoError(t, err)
		require.Equal(t, 24.0, discount)
	})

	t.Run("product_discounted_price", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method:  http.MethodGet,
			path:    "/stores/s1/products/a/discounted-price",
			respond: `{"success": true, "data": 108}`,
		})

		price, err := gw.ProductDiscountedPrice("s1", "a")
		require.NoError(t, err)
		require.Equal(t, 108.0, price)
	})
}

// Tests the negotiation endpoints
func TestRestGateway_Negotiation(t *testing.T) {
	t.Run("submit_bid_payload", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method: http.MethodPost,
			path:   "/purchases/bid/submit",
			wantBody: map[string]any{
				"storeId": "s1", "productId": "p1", "bidAmount": float64(75),
				"shippingAddress": "12 Harbor Lane", "paymentDetails": "4111",
			},
			respond: `{"success": true}`,
		})

		details := model.PurchaseDetails{ShippingAddress: "12 Harbor Lane", PaymentDetails: "4111"}
		require.NoError(t, gw.SubmitBid("s1", "p1", 75, details))
	})

	t.Run("counter_bid_payload", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method: http.MethodPost,
			path:   "/purchases/bid/counter",
			wantBody: map[string]any{
				"storeId": "s1", "productId": "p1",
				"bidderUsername": "alice", "counterAmount": float64(65),
			},
			respond: `{"success": true}`,
		})

		require.NoError(t, gw.CounterBid("s1", "p1", "alice", 65))
	})

	t.Run("auction_status_derives_snapshot", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method: http.MethodGet,
			path:   "/purchases/auction/status/0/s1/p1",
			respond: `{"success": true, "data": {
				"startingPrice": 10, "currentMaxOffer": 55, "timeLeftMillis": 60000
			}}`,
		})

		status, err := gw.AuctionStatus("s1", "p1")
		require.NoError(t, err)
		require.Equal(t, 55.0, status.CurrentMaxOffer)
		require.Equal(t, int64(60000), status.TimeLeftMillis)
		require.False(t, status.FetchedAt.IsZero())
		require.False(t, status.Ended)
	})

	t.Run("expired_auction_status_reads_ended", func(t *testing.T) {
		gw := newGateway(t, &fakeBackend{
			method: http.MethodGet,
			path:   "/purchases/auction/status/0/s1/p1",
			respond: `{"success": true, "data": {
				"startingPrice": 10, "currentMaxOffer": 55, "timeLeftMillis": 0
			}}`,
		})

		status, err := gw.AuctionStatus("s1", "p1")
		require.NoError(t, err)
		require.True(t, status.Ended)
	})
}
