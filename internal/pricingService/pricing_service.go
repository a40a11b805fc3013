package pricing

import (
	"sync"

	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	"storefront-engine/utils"
)

// PricingService reconstructs per-item discounted prices from the backend's
// bag-level pricing API. The backend only exposes original and discounted
// totals per store bag, so each item's share of the bag discount is
// allocated proportionally to its share of the bag's original total.
type PricingService struct {
	gw gateway.Gateway
}

// NewPricingService creates a new PricingService instance
func NewPricingService(gw gateway.Gateway) *PricingService {
	return &PricingService{gw: gw}
}

// PriceCart resolves effective prices for every cart line. Stores are
// priced concurrently and independently: a failed lookup for one store
// degrades only that store's lines to original pricing.
func (s *PricingService) PriceCart(lines []model.CartLine) []model.CartLine {
	if len(lines) == 0 {
		return nil
	}

	byStore := make(map[string][]model.CartLine)
	for _, line := range lines {
		byStore[line.StoreID] = append(byStore[line.StoreID], line)
	}

	type storeResult struct {
		storeID string
		lines   []model.CartLine
	}

	results := make(chan storeResult, len(byStore))
	var wg sync.WaitGroup
	for storeID, storeLines := range byStore {
		wg.Add(1)
		go func(storeID string, storeLines []model.CartLine) {
			defer wg.Done()
			results <- storeResult{storeID, s.priceBag(storeID, storeLines)}
		}(storeID, storeLines)
	}
	wg.Wait()
	close(results)

	// Reassemble in a store -> lines map, then flatten preserving the
	// caller's line order.
	priced := make(map[string]map[string]model.CartLine)
	for res := range results {
		byProduct := make(map[string]model.CartLine, len(res.lines))
		for _, line := range res.lines {
			byProduct[line.ProductID] = line
		}
		priced[res.storeID] = byProduct
	}

	out := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		if p, ok := priced[line.StoreID][line.ProductID]; ok {
			out = append(out, p)
		} else {
			out = append(out, withoutDiscount(line))
		}
	}
	return out
}

// priceBag prices one store's bag. Any gateway failure falls back to the
// store's original prices.
func (s *PricingService) priceBag(storeID string, lines []model.CartLine) []model.CartLine {
	quantities := make(map[string]int, len(lines))
	for _, line := range lines {
		quantities[line.ProductID] = line.Quantity
	}

	original, err := s.gw.BagPrice(storeID, quantities)
	if err != nil {
		utils.Warn("pricing: bag price lookup failed, using original prices", map[string]any{
			"store_id": storeID,
			"error":    err.Error(),
		})
		return fallbackBag(lines)
	}

	discount, err := s.gw.BagDiscount(storeID, quantities)
	if err != nil {
		utils.Warn("pricing: bag discount lookup failed, using original prices", map[string]any{
			"store_id": storeID,
			"error":    err.Error(),
		})
		return fallbackBag(lines)
	}

	return AllocateBagDiscount(lines, original, original-discount)
}

// AllocateBagDiscount derives per-item effective pricing from bag-level
// totals. Each item's savings is the bag's savings weighted by the item's
// proportion of the bag's original total. When the bag savings is zero or
// negative every item reports no discount, regardless of what the division
// would produce.
func AllocateBagDiscount(lines []model.CartLine, originalBagTotal, discountedBagTotal float64) []model.CartLine {
	bagSavings := originalBagTotal - discountedBagTotal
	if bagSavings <= 0 {
		return fallbackBag(lines)
	}

	var storeOriginalTotal float64
	for _, line := range lines {
		storeOriginalTotal += line.UnitPrice * float64(line.Quantity)
	}

	out := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		itemOriginalTotal := line.UnitPrice * float64(line.Quantity)
		var proportion float64
		if storeOriginalTotal > 0 {
			proportion = itemOriginalTotal / storeOriginalTotal
		}
		itemSavings := bagSavings * proportion
		itemDiscountedTotal := itemOriginalTotal - itemSavings

		line.EffectivePrice = itemDiscountedTotal / float64(line.Quantity)
		line.Savings = itemSavings / float64(line.Quantity)
		line.HasDiscount = line.EffectivePrice < line.UnitPrice
		out = append(out, line)
	}
	return out
}

// ProductDiscountedPrice resolves the discounted unit price for a single
// product view. It returns the original price and false when the backend
// reports no effective discount or the lookup fails.
func (s *PricingService) ProductDiscountedPrice(product model.Product) (float64, bool) {
	price, err := s.gw.ProductDiscountedPrice(product.StoreID, product.ProductID)
	if err != nil {
		utils.Warn("pricing: discounted price lookup failed", map[string]any{
			"store_id":   product.StoreID,
			"product_id": product.ProductID,
			"error":      err.Error(),
		})
		return product.Price, false
	}
	if price < product.Price {
		return price, true
	}
	return product.Price, false
}

func withoutDiscount(line model.CartLine) model.CartLine {
	line.EffectivePrice = line.UnitPrice
	line.Savings = 0
	line.HasDiscount = false
	return line
}

func fallbackBag(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, withoutDiscount(line))
	}
	return out
}
