package server

import (
	handler "storefront-engine/services/storefront/handler"

	"github.com/gin-gonic/gin"
)

// Dependencies carries the engine services the router exposes
type Dependencies struct {
	Session      handler.SessionServiceInterface
	Cart         handler.CartServiceInterface
	Negotiation  handler.NegotiationServiceInterface
	Notification handler.NotificationBrokerInterface
}

// SetupRouter configures all Gin routes for the storefront facade
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())                        // recover from panics
	router.Use(RequestLoggerMiddleware(deps.Session)) // session-tagged request logging

	sessionHandler := handler.NewSessionHandler(deps.Session)
	cartHandler := handler.NewCartHandler(deps.Cart)
	negotiationHandler := handler.NewNegotiationHandler(deps.Negotiation)
	notificationHandler := handler.NewNotificationHandler(deps.Notification, deps.Session)

	session := router.Group("/session")
	{
		session.GET("", sessionHandler.GetSessionHandler)
		session.POST("/login", sessionHandler.LoginHandler)
		session.POST("/logout", sessionHandler.LogoutHandler)
		session.POST("/register", sessionHandler.RegisterHandler)
	}

	cart := router.Group("/cart")
	{
		cart.GET("", cartHandler.GetCartHandler)
		cart.POST("/items", cartHandler.AddCartItemHandler)
		cart.PUT("/items/:product_id", cartHandler.UpdateCartItemHandler)
		cart.DELETE("/items/:product_id", cartHandler.RemoveCartItemHandler)
	}

	negotiation := router.Group("/negotiation")
	{
		negotiation.POST("/bids", negotiationHandler.SubmitBidHandler)
		negotiation.GET("/bids/:store_id/:product_id", negotiationHandler.GetBidsHandler)
		negotiation.POST("/bids/:bid_id/approve", negotiationHandler.ApproveBidHandler)
		negotiation.POST("/bids/:bid_id/reject", negotiationHandler.RejectBidHandler)
		negotiation.POST("/bids/:bid_id/counter", negotiationHandler.CounterBidHandler)
		negotiation.POST("/bids/:bid_id/counter/accept", negotiationHandler.AcceptCounterHandler)
		negotiation.POST("/bids/:bid_id/counter/decline", negotiationHandler.DeclineCounterHandler)
		negotiation.GET("/auctions/:store_id/:product_id", negotiationHandler.GetAuctionStatusHandler)
		negotiation.POST("/auctions/offer", negotiationHandler.SubmitAuctionOfferHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", notificationHandler.GetNotificationsHandler)
		notifications.POST("/:id/read", notificationHandler.MarkNotificationReadHandler)
	}

	return router
}
