package negotiation

import (
	"fmt"
	"sync"
	"time"

	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	"storefront-engine/internal/storeerrors"
	"storefront-engine/utils"
)

const (
	tickInterval   = time.Second
	resyncInterval = 30 * time.Second
)

// AuctionTracker holds the live view of one auction. Remaining time is
// derived locally from the last server snapshot every second; the snapshot
// itself is resynchronized from the server every 30 seconds (and on demand)
// to correct client clock drift. Ended latches true and never reverts, even
// if a later snapshot disagrees.
type AuctionTracker struct {
	gw        gateway.Gateway
	storeID   string
	productID string

	mu        sync.Mutex
	status    model.AuctionStatus
	ended     bool
	observers map[int]func(model.AuctionStatus)
	nextObs   int

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  bool
}

// NewAuctionTracker creates a tracker for one auction listing. Call Start
// to begin ticking and Stop to tear both timers down.
func NewAuctionTracker(gw gateway.Gateway, storeID, productID string) *AuctionTracker {
	return &AuctionTracker{
		gw:        gw,
		storeID:   storeID,
		productID: productID,
		observers: make(map[int]func(model.AuctionStatus)),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Subscribe registers an observer for every status change and returns an
// unsubscribe function
func (t *AuctionTracker) Subscribe(fn func(model.AuctionStatus)) func() {
	t.mu.Lock()
	id := t.nextObs
	t.nextObs++
	t.observers[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.observers, id)
		t.mu.Unlock()
	}
}

// Start fetches the initial snapshot and launches the countdown and resync
// timers
func (t *AuctionTracker) Start() {
	if err := t.Resync(); err != nil {
		utils.Warn("auction: initial status fetch failed", map[string]any{
			"store_id":   t.storeID,
			"product_id": t.productID,
			"error":      err.Error(),
		})
	}
	t.mu.Lock()
	t.started = true
	t.mu.Unlock()
	go t.run()
}

// Stop cancels both timers. No timer-driven observer fires after Stop
// returns.
func (t *AuctionTracker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })

	t.mu.Lock()
	started := t.started
	t.mu.Unlock()
	if started {
		<-t.done
	}
}

func (t *AuctionTracker) run() {
	defer close(t.done)

	tick := time.NewTicker(tickInterval)
	defer tick.Stop()
	resync := time.NewTicker(resyncInterval)
	defer resync.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tick.C:
			t.tickLocal()
		case <-resync.C:
			if err := t.Resync(); err != nil {
				utils.Warn("auction: periodic resync failed", map[string]any{
					"store_id":   t.storeID,
					"product_id": t.productID,
					"error":      err.Error(),
				})
			}
		}
	}
}

// tickLocal advances the derived countdown without touching the network.
// Before the first successful fetch there is nothing to count down, so the
// tick is a no-op; in particular it must not latch ended off a zero
// snapshot, or a transient fetch failure at Start would brick a live
// auction until restart.
func (t *AuctionTracker) tickLocal() {
	t.mu.Lock()
	if t.status.FetchedAt.IsZero() {
		t.mu.Unlock()
		return
	}
	remaining := t.status.Remaining(time.Now())
	if remaining == 0 && !t.ended {
		t.ended = true
	}
	snapshot := t.derivedLocked(remaining)
	observers := t.observersLocked()
	t.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}

// Resync replaces the snapshot with the server's authoritative view. The
// ended latch survives a snapshot that claims time left.
func (t *AuctionTracker) Resync() error {
	status, err := t.gw.AuctionStatus(t.storeID, t.productID)
	if err != nil {
		return fmt.Errorf("auction: resync %s/%s: %w", t.storeID, t.productID, err)
	}

	t.mu.Lock()
	t.status = status
	if status.Ended {
		t.ended = true
	}
	remaining := t.status.Remaining(time.Now())
	if remaining == 0 {
		t.ended = true
	}
	snapshot := t.derivedLocked(remaining)
	observers := t.observersLocked()
	t.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
	return nil
}

// Snapshot returns the current derived auction view
func (t *AuctionTracker) Snapshot() model.AuctionStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.derivedLocked(t.status.Remaining(time.Now()))
}

func (t *AuctionTracker) derivedLocked(remaining int64) model.AuctionStatus {
	s := t.status
	s.TimeLeftMillis = remaining
	s.FetchedAt = time.Now()
	s.Ended = t.ended || remaining == 0
	return s
}

func (t *AuctionTracker) observersLocked() []func(model.AuctionStatus) {
	out := make([]func(model.AuctionStatus), 0, len(t.observers))
	for _, fn := range t.observers {
		out = append(out, fn)
	}
	return out
}

// SubmitOffer validates and submits an auction offer. Offers that do not
// exceed the current maximum are rejected locally without a network call.
// Another bidder may still win the race server-side, so a backend rejection
// triggers an immediate authoritative resync instead of trusting the stale
// local snapshot.
func (t *AuctionTracker) SubmitOffer(amount float64, details model.PurchaseDetails) error {
	t.mu.Lock()
	ended := t.ended || t.status.Remaining(time.Now()) == 0
	currentMax := t.status.CurrentMaxOffer
	t.mu.Unlock()

	if ended {
		return fmt.Errorf("auction: offer on %s: %w", t.productID, storeerrors.ErrAuctionEnded)
	}
	if amount <= currentMax {
		return fmt.Errorf("auction: offer %.2f on %s: %w - current max is %.2f",
			amount, t.productID, storeerrors.ErrOfferTooLow, currentMax)
	}
	if details.ShippingAddress == "" || details.PaymentDetails == "" {
		return fmt.Errorf("auction: offer on %s: %w - missing shipping or payment details", t.productID, storeerrors.ErrValidation)
	}

	if err := t.gw.SubmitAuctionOffer(t.storeID, t.productID, amount, details); err != nil {
		if resyncErr := t.Resync(); resyncErr != nil {
			utils.Warn("auction: resync after rejected offer failed", map[string]any{
				"store_id":   t.storeID,
				"product_id": t.productID,
				"error":      resyncErr.Error(),
			})
		}
		return fmt.Errorf("auction: offer %.2f on %s: %w", amount, t.productID, err)
	}

	if err := t.Resync(); err != nil {
		utils.Warn("auction: resync after accepted offer failed", map[string]any{
			"store_id":   t.storeID,
			"product_id": t.productID,
			"error":      err.Error(),
		})
	}

	utils.Info("auction: offer submitted", map[string]any{
		"store_id":   t.storeID,
		"product_id": t.productID,
		"amount":     amount,
	})
	return nil
}
