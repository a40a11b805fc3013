package cart

import (
	"fmt"
	"sync"

	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	pricing "storefront-engine/internal/pricingService"
	"storefront-engine/internal/storeerrors"
	"storefront-engine/utils"
)

// CartService maintains the canonical cart view by reconciling local
// mutations with the backend's bag snapshots. Every mutation is followed by
// a refresh so the held view never diverges from backend truth for more
// than one round trip.
type CartService struct {
	gw      gateway.Gateway
	pricing *pricing.PricingService

	mu    sync.RWMutex
	lines []model.CartLine
}

// NewCartService creates a new CartService instance
func NewCartService(gw gateway.Gateway, pricingSvc *pricing.PricingService) *CartService {
	return &CartService{gw: gw, pricing: pricingSvc}
}

// Lines returns the last known priced cart snapshot
func (s *CartService) Lines() []model.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CartLine(nil), s.lines...)
}

// Clear drops the local snapshot without touching the backend. Used on
// identity transitions where the new actor's cart is fetched separately.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Refresh rebuilds the snapshot from the backend's bag representation.
// Missing product metadata degrades to a placeholder line rather than
// failing the refresh; a failed cart fetch keeps the last known snapshot.
func (s *CartService) Refresh() error {
	bags, err := s.gw.GetCart()
	if err != nil {
		return fmt.Errorf("cart: refresh: %w", err)
	}

	var lines []model.CartLine
	for storeID, products := range bags {
		for productID, quantity := range products {
			lines = append(lines, s.resolveLine(storeID, productID, quantity))
		}
	}

	lines = s.pricing.PriceCart(lines)

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return nil
}

// resolveLine fetches display metadata for one bag entry, substituting a
// placeholder when the lookup fails
func (s *CartService) resolveLine(storeID, productID string, quantity int) model.CartLine {
	line := model.CartLine{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  quantity,
	}

	product, err := s.gw.GetProduct(productID)
	if err != nil {
		utils.Warn("cart: product metadata unavailable, using placeholder", map[string]any{
			"product_id": productID,
			"store_id":   storeID,
			"error":      err.Error(),
		})
		line.Title = fmt.Sprintf("Product %s", productID)
		line.UnitPrice = 0
		return line
	}

	line.Title = product.Title
	line.UnitPrice = product.Price
	line.Image = product.Image
	return line
}

// Add puts quantity units of a product into the cart and refreshes
func (s *CartService) Add(storeID, productID string, quantity int) error {
	if storeID == "" || productID == "" || quantity < 1 {
		return fmt.Errorf("cart: add: %w", storeerrors.ErrValidation)
	}
	if err := s.gw.AddToCart(storeID, productID, quantity); err != nil {
		return fmt.Errorf("cart: add %s to store %s: %w", productID, storeID, err)
	}
	return s.Refresh()
}

// UpdateQuantity sets a cart line to newQuantity by issuing the add or
// remove delta against the last known snapshot. A zero delta is a no-op.
func (s *CartService) UpdateQuantity(productID string, newQuantity int) error {
	if newQuantity < 1 {
		return fmt.Errorf("cart: update quantity: %w - quantity must be at least 1", storeerrors.ErrValidation)
	}

	current, ok := s.findLine(productID)
	if !ok {
		return fmt.Errorf("cart: update quantity for %s: %w", productID, storeerrors.ErrNotFound)
	}

	delta := newQuantity - current.Quantity
	switch {
	case delta > 0:
		if err := s.gw.AddToCart(current.StoreID, productID, delta); err != nil {
			return fmt.Errorf("cart: increase %s by %d: %w", productID, delta, err)
		}
	case delta < 0:
		if err := s.gw.RemoveFromCart(current.StoreID, productID, -delta); err != nil {
			return fmt.Errorf("cart: decrease %s by %d: %w", productID, -delta, err)
		}
	default:
		return nil
	}

	return s.Refresh()
}

// Remove deletes a cart line by removing its full quantity
func (s *CartService) Remove(productID string) error {
	current, ok := s.findLine(productID)
	if !ok {
		return fmt.Errorf("cart: remove %s: %w", productID, storeerrors.ErrNotFound)
	}

	if err := s.gw.RemoveFromCart(current.StoreID, productID, current.Quantity); err != nil {
		return fmt.Errorf("cart: remove %s: %w", productID, err)
	}
	return s.Refresh()
}

func (s *CartService) findLine(productID string) (model.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, line := range s.lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return model.CartLine{}, false
}

// Total returns the cart total at effective prices
func (s *CartService) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, line := range s.lines {
		total += line.EffectivePrice * float64(line.Quantity)
	}
	return total
}

// TotalSavings returns the summed savings across all lines
func (s *CartService) TotalSavings() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, line := range s.lines {
		total += line.Savings * float64(line.Quantity)
	}
	return total
}
