package negotiation

import (
	"fmt"
	"sort"
	"sync"

	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	"storefront-engine/internal/storeerrors"
	"storefront-engine/utils"
)

// NegotiationService drives the BID purchase-type workflow: bid submission
// by buyers and approve/reject/counter decisions by store managers. The
// service holds a read-mostly copy of the backend's bids, enforces
// transition legality independent of any UI, and serializes actions per bid
// with a single-flight guard keyed by bid ID.
type NegotiationService struct {
	gw gateway.Gateway

	mu         sync.Mutex
	bids       map[string]model.Bid // bid ID -> last known state
	processing map[string]bool      // bid ID -> action in flight
	trackers   map[string]*AuctionTracker
}

// NewNegotiationService creates a new NegotiationService instance
func NewNegotiationService(gw gateway.Gateway) *NegotiationService {
	return &NegotiationService{
		gw:         gw,
		bids:       make(map[string]model.Bid),
		processing: make(map[string]bool),
		trackers:   make(map[string]*AuctionTracker),
	}
}

// SubmitBid validates and submits a buyer's bid on a BID-type listing.
// Validation failures block the submission before any network call.
func (s *NegotiationService) SubmitBid(storeID, productID string, amount float64, details model.PurchaseDetails) error {
	if storeID == "" || productID == "" {
		return fmt.Errorf("negotiation: submit bid: %w - missing store or product", storeerrors.ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("negotiation: submit bid: %w - non-positive amount", storeerrors.ErrValidation)
	}
	if details.ShippingAddress == "" || details.PaymentDetails == "" {
		return fmt.Errorf("negotiation: submit bid: %w - missing shipping or payment details", storeerrors.ErrValidation)
	}

	if err := s.gw.SubmitBid(storeID, productID, amount, details); err != nil {
		return fmt.Errorf("negotiation: submit bid on %s: %w", productID, err)
	}

	utils.Info("negotiation: bid submitted", map[string]any{
		"store_id":   storeID,
		"product_id": productID,
		"amount":     amount,
	})
	return nil
}

// LoadBids refreshes the local copy of a product's bids from the backend
// and returns them ordered newest first. Bids without a backend-assigned ID
// get a stable synthetic one so actions can address them unambiguously.
func (s *NegotiationService) LoadBids(storeID, productID string) ([]model.Bid, error) {
	bids, err := s.gw.ProductBids(storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("negotiation: load bids for %s: %w", productID, err)
	}

	s.mu.Lock()
	for i := range bids {
		bids[i].StoreID = storeID
		bids[i].ProductID = productID
		if bids[i].BidID == "" {
			bids[i].BidID = fmt.Sprintf("%s:%s:%s:%d", storeID, productID, bids[i].BidderID, i)
		}
		if bids[i].Status == "" {
			bids[i].Status = model.BidPending
		}
		s.bids[bids[i].BidID] = bids[i]
	}
	s.mu.Unlock()

	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt.After(bids[j].CreatedAt) })
	return bids, nil
}

// Bid returns the last known state of a bid
func (s *NegotiationService) Bid(bidID string) (model.Bid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bid, ok := s.bids[bidID]
	return bid, ok
}

// beginAction acquires the single-flight guard for a bid and checks that
// the bid is still in the required status. Callers must release with
// endAction.
func (s *NegotiationService) beginAction(bidID string, required model.BidStatus) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("negotiation: bid %s: %w", bidID, storeerrors.ErrBidNotFound)
	}
	if s.processing[bidID] {
		return model.Bid{}, fmt.Errorf("negotiation: bid %s: %w", bidID, storeerrors.ErrBidInFlight)
	}
	if bid.Status != required {
		switch required {
		case model.BidPending:
			return model.Bid{}, fmt.Errorf("negotiation: bid %s is %s: %w", bidID, bid.Status, storeerrors.ErrBidNotPending)
		default:
			return model.Bid{}, fmt.Errorf("negotiation: bid %s is %s: %w", bidID, bid.Status, storeerrors.ErrBidNotCounter)
		}
	}

	s.processing[bidID] = true
	return bid, nil
}

func (s *NegotiationService) endAction(bidID string) {
	s.mu.Lock()
	delete(s.processing, bidID)
	s.mu.Unlock()
}

// transition records the authoritative outcome of a successful action
func (s *NegotiationService) transition(bidID string, status model.BidStatus, counterAmount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bid, ok := s.bids[bidID]
	if !ok {
		return
	}
	bid.Status = status
	if counterAmount > 0 {
		bid.CounterAmount = counterAmount
	}
	s.bids[bidID] = bid
}

// Approve approves a pending bid. Approved is terminal: the purchase
// completes server-side.
func (s *NegotiationService) Approve(bidID string) error {
	bid, err := s.beginAction(bidID, model.BidPending)
	if err != nil {
		return err
	}
	defer s.endAction(bidID)

	if err := s.gw.ApproveBid(bid.StoreID, bid.ProductID, bid.BidderID); err != nil {
		return fmt.Errorf("negotiation: approve bid %s: %w", bidID, err)
	}
	s.transition(bidID, model.BidApproved, 0)

	utils.Info("negotiation: bid approved", map[string]any{"bid_id": bidID, "bidder": bid.BidderID})
	return nil
}

// Reject rejects a pending bid. Rejected is terminal.
func (s *NegotiationService) Reject(bidID string) error {
	bid, err := s.beginAction(bidID, model.BidPending)
	if err != nil {
		return err
	}
	defer s.endAction(bidID)

	if err := s.gw.RejectBid(bid.StoreID, bid.ProductID, bid.BidderID); err != nil {
		return fmt.Errorf("negotiation: reject bid %s: %w", bidID, err)
	}
	s.transition(bidID, model.BidRejected, 0)

	utils.Info("negotiation: bid rejected", map[string]any{"bid_id": bidID, "bidder": bid.BidderID})
	return nil
}

// Counter proposes a counter-offer on a pending bid. The buyer may then
// accept or decline the counter, which is terminal either way.
func (s *NegotiationService) Counter(bidID string, counterAmount float64) error {
	if counterAmount <= 0 {
		return fmt.Errorf("negotiation: counter bid %s: %w - non-positive amount", bidID, storeerrors.ErrValidation)
	}

	bid, err := s.beginAction(bidID, model.BidPending)
	if err != nil {
		return err
	}
	defer s.endAction(bidID)

	if err := s.gw.CounterBid(bid.StoreID, bid.ProductID, bid.BidderID, counterAmount); err != nil {
		return fmt.Errorf("negotiation: counter bid %s: %w", bidID, err)
	}
	s.transition(bidID, model.BidCountered, counterAmount)

	utils.Info("negotiation: counter-offer proposed", map[string]any{
		"bid_id":         bidID,
		"bidder":         bid.BidderID,
		"counter_amount": counterAmount,
	})
	return nil
}

// AcceptCounter accepts the seller's counter-offer on the caller's bid
func (s *NegotiationService) AcceptCounter(bidID string) error {
	bid, err := s.beginAction(bidID, model.BidCountered)
	if err != nil {
		return err
	}
	defer s.endAction(bidID)

	if err := s.gw.AcceptCounterOffer(bid.StoreID, bid.ProductID); err != nil {
		return fmt.Errorf("negotiation: accept counter on bid %s: %w", bidID, err)
	}
	s.transition(bidID, model.BidApproved, 0)

	utils.Info("negotiation: counter-offer accepted", map[string]any{"bid_id": bidID})
	return nil
}

// DeclineCounter declines the seller's counter-offer on the caller's bid
func (s *NegotiationService) DeclineCounter(bidID string) error {
	bid, err := s.beginAction(bidID, model.BidCountered)
	if err != nil {
		return err
	}
	defer s.endAction(bidID)

	if err := s.gw.DeclineCounterOffer(bid.StoreID, bid.ProductID); err != nil {
		return fmt.Errorf("negotiation: decline counter on bid %s: %w", bidID, err)
	}
	s.transition(bidID, model.BidRejected, 0)

	utils.Info("negotiation: counter-offer declined", map[string]any{"bid_id": bidID})
	return nil
}

// Tracker returns the auction tracker for a listing, creating and starting
// one on first use. The initial status fetch runs outside the service lock
// so a slow backend cannot stall unrelated bid actions; until it lands the
// tracker serves a zero snapshot.
func (s *NegotiationService) Tracker(storeID, productID string) *AuctionTracker {
	key := storeID + "/" + productID

	s.mu.Lock()
	t, ok := s.trackers[key]
	if !ok {
		t = NewAuctionTracker(s.gw, storeID, productID)
		s.trackers[key] = t
	}
	s.mu.Unlock()

	if !ok {
		t.Start()
	}
	return t
}

// Close stops every live auction tracker
func (s *NegotiationService) Close() {
	s.mu.Lock()
	trackers := make([]*AuctionTracker, 0, len(s.trackers))
	for _, t := range s.trackers {
		trackers = append(trackers, t)
	}
	s.trackers = make(map[string]*AuctionTracker)
	s.mu.Unlock()

	for _, t := range trackers {
		t.Stop()
	}
}
