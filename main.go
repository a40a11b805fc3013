package main

import (
	"fmt"
	"os"

	cart "storefront-engine/internal/cartService"
	"storefront-engine/internal/gateway"
	negotiation "storefront-engine/internal/negotiationService"
	"storefront-engine/internal/notify"
	pricing "storefront-engine/internal/pricingService"
	"storefront-engine/internal/server"
	session "storefront-engine/internal/sessionService"
	"storefront-engine/utils"
)

func main() {

	gw := gateway.NewRestGateway(backendURL())

	pricingSvc := pricing.NewPricingService(gw)
	cartSvc := cart.NewCartService(gw, pricingSvc)
	sessionSvc := session.NewSessionService(gw, cartSvc, session.NewMemoryTokenStore())
	negotiationSvc := negotiation.NewNegotiationService(gw)
	broker := notify.NewBroker()
	defer broker.Close()
	defer negotiationSvc.Close()

	if err := sessionSvc.Initialize(); err != nil {
		// A failed initialization still leaves a defined guest session;
		// the facade starts regardless and retries through its endpoints.
		utils.Warn("startup: session initialization degraded", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(server.Dependencies{
		Session:      sessionSvc,
		Cart:         cartSvc,
		Negotiation:  negotiationSvc,
		Notification: broker,
	})

	port := getPort()
	fmt.Printf("Starting storefront facade on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// backendURL returns the marketplace backend base URL from env or the
// local default
func backendURL() string {
	if u := os.Getenv("BACKEND_URL"); u != "" {
		return u
	}
	return "http://localhost:8080/api"
}

// getPort returns the facade port from env or defaults to ":8090"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8090"
}
