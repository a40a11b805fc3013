package session

import (
	"fmt"
	"sync"

	cart "storefront-engine/internal/cartService"
	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	"storefront-engine/internal/storeerrors"
	"storefront-engine/utils"
)

// ReplayPolicy controls how guest-cart replay failures are handled during
// registration
type ReplayPolicy int

const (
	// ReplaySkip logs a failed line and continues; registration stands
	// even when some lines do not transfer.
	ReplaySkip ReplayPolicy = iota
	// ReplayAbort stops the replay at the first failure and reports it.
	// Registration is not rolled back in either mode; the backend offers
	// no compensating unregister.
	ReplayAbort
)

// SessionService owns the guest/authenticated duality: who the current
// actor is, how its token is obtained, and how identity transitions happen
// without losing in-progress cart state. Every operation terminates in a
// defined session state.
type SessionService struct {
	gw     gateway.Gateway
	cart   *cart.CartService
	tokens TokenStore
	policy ReplayPolicy

	mu      sync.RWMutex
	current model.Session
}

// NewSessionService creates a new SessionService instance
func NewSessionService(gw gateway.Gateway, cartSvc *cart.CartService, tokens TokenStore) *SessionService {
	return &SessionService{
		gw:     gw,
		cart:   cartSvc,
		tokens: tokens,
		policy: ReplaySkip,
	}
}

// SetReplayPolicy overrides the guest-cart replay failure policy
func (s *SessionService) SetReplayPolicy(policy ReplayPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

// Current returns the active session
func (s *SessionService) Current() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SessionService) setSession(sess model.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

// Initialize restores an authenticated session from a stored token, or
// falls back to a fresh guest identity. A failed restore (expired or
// invalid token) clears the token and degrades to guest; a failed cart
// refresh degrades to an empty cart.
func (s *SessionService) Initialize() error {
	token, ok := s.tokens.Load()
	if !ok {
		return s.initGuest()
	}

	s.gw.SetToken(token)
	username, err := s.gw.Profile()
	if err != nil {
		utils.Warn("session: stored token restore failed, falling back to guest", map[string]any{
			"error": err.Error(),
		})
		s.gw.ClearToken()
		if clearErr := s.tokens.Clear(); clearErr != nil {
			utils.Error("session: failed to clear invalid token", map[string]any{"error": clearErr.Error()})
		}
		return s.initGuest()
	}

	s.setSession(model.Session{
		Kind:       model.SessionAuthenticated,
		Identifier: username,
		Token:      token,
	})
	s.refreshCartBestEffort()

	utils.Info("session: restored authenticated session", map[string]any{"username": username})
	return nil
}

// initGuest registers a fresh guest identity and authenticates it. Even
// when the backend is unreachable the session ends up in a defined,
// token-less guest state.
func (s *SessionService) initGuest() error {
	guestID := utils.GenerateGuestID()

	if err := s.gw.RegisterGuest(guestID); err != nil {
		s.degradeToOfflineGuest(guestID)
		return fmt.Errorf("session: register guest: %w", err)
	}

	token, err := s.gw.GuestLogin(guestID)
	if err != nil {
		s.degradeToOfflineGuest(guestID)
		return fmt.Errorf("session: guest login: %w", err)
	}

	s.gw.SetToken(token)
	if err := s.tokens.Save(token); err != nil {
		utils.Warn("session: could not persist guest token", map[string]any{"error": err.Error()})
	}

	s.setSession(model.Session{
		Kind:       model.SessionGuest,
		Identifier: guestID,
		Token:      token,
	})
	s.refreshCartBestEffort()

	utils.Info("session: initialized guest session", map[string]any{"guest_id": guestID})
	return nil
}

// degradeToOfflineGuest leaves a defined guest session with no token and an
// empty cart when guest provisioning itself fails
func (s *SessionService) degradeToOfflineGuest(guestID string) {
	s.gw.ClearToken()
	s.setSession(model.Session{Kind: model.SessionGuest, Identifier: guestID})
	s.cart.Clear()
}

// refreshCartBestEffort refreshes the cart, degrading to an empty snapshot
// on failure instead of surfacing the error
func (s *SessionService) refreshCartBestEffort() {
	if err := s.cart.Refresh(); err != nil {
		utils.Warn("session: cart refresh failed, degrading to empty cart", map[string]any{
			"error": err.Error(),
		})
		s.cart.Clear()
	}
}

// Login replaces the current session with an authenticated one. The guest
// cart is deliberately not transferred: the server-side user cart becomes
// authoritative. A failed login falls back to a fresh guest session and
// reports the failure.
func (s *SessionService) Login(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("session: login: %w", storeerrors.ErrInvalidLogin)
	}

	s.gw.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		utils.Warn("session: failed to clear guest token on login", map[string]any{"error": err.Error()})
	}
	s.cart.Clear()

	token, err := s.gw.Login(username, password)
	if err != nil {
		if guestErr := s.initGuest(); guestErr != nil {
			utils.Error("session: guest fallback after failed login also failed", map[string]any{
				"error": guestErr.Error(),
			})
		}
		return fmt.Errorf("session: login %s: %w", username, err)
	}

	s.gw.SetToken(token)
	if err := s.tokens.Save(token); err != nil {
		utils.Warn("session: could not persist token", map[string]any{"error": err.Error()})
	}

	s.setSession(model.Session{
		Kind:       model.SessionAuthenticated,
		Identifier: username,
		Token:      token,
	})
	s.refreshCartBestEffort()

	utils.Info("session: user logged in", map[string]any{"username": username})
	return nil
}

// RegisterWithCart registers a new account and transfers the guest cart
// into it, leaving the caller logged out as a fresh guest afterwards. The
// guest cart is snapshotted before registration, replayed line by line into
// the new account's server-side cart through a temporary login, and the
// temporary session is then discarded.
func (s *SessionService) RegisterWithCart(data gateway.RegistrationData) error {
	if data.Username == "" || data.Password == "" {
		return fmt.Errorf("session: register: %w - missing username or password", storeerrors.ErrValidation)
	}

	snapshot := s.cart.Lines()

	if err := s.gw.Register(data); err != nil {
		return fmt.Errorf("session: register %s: %w", data.Username, err)
	}

	replayErr := s.replayCart(data, snapshot)

	// Always discard the temporary session and return to a fresh guest,
	// even when the replay was cut short.
	s.gw.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		utils.Warn("session: failed to clear temporary token", map[string]any{"error": err.Error()})
	}
	s.cart.Clear()
	if err := s.initGuest(); err != nil {
		utils.Error("session: guest reinit after registration failed", map[string]any{"error": err.Error()})
	}

	if replayErr != nil {
		return replayErr
	}

	utils.Info("session: account registered with cart transfer", map[string]any{
		"username": data.Username,
		"lines":    len(snapshot),
	})
	return nil
}

// replayCart temporarily authenticates as the new account and replays the
// snapshotted guest lines into its server-side cart
func (s *SessionService) replayCart(data gateway.RegistrationData, snapshot []model.CartLine) error {
	if len(snapshot) == 0 {
		return nil
	}

	token, err := s.gw.Login(data.Username, data.Password)
	if err != nil {
		return fmt.Errorf("session: temporary login for cart transfer: %w", err)
	}
	s.gw.SetToken(token)

	policy := s.replayPolicy()
	for _, line := range snapshot {
		if err := s.gw.AddToCart(line.StoreID, line.ProductID, line.Quantity); err != nil {
			utils.Warn("session: cart line replay failed", map[string]any{
				"product_id": line.ProductID,
				"store_id":   line.StoreID,
				"quantity":   line.Quantity,
				"error":      err.Error(),
			})
			if policy == ReplayAbort {
				return fmt.Errorf("session: replay cart line %s: %w", line.ProductID, err)
			}
		}
	}
	return nil
}

func (s *SessionService) replayPolicy() ReplayPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// Logout clears authentication and reinitializes guest state
// unconditionally, even when the clear step fails
func (s *SessionService) Logout() error {
	s.gw.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		utils.Error("session: token clear failed during logout", map[string]any{"error": err.Error()})
	}
	s.cart.Clear()

	utils.Info("session: logged out", nil)
	return s.initGuest()
}
