package handler

import (
	"fmt"
	"net/http"

	model "storefront-engine/internal/models"
	negotiation "storefront-engine/internal/negotiationService"
	"storefront-engine/services/storefront/helpers"
	"storefront-engine/utils"

	"github.com/gin-gonic/gin"
)

type NegotiationServiceInterface interface {
	SubmitBid(storeID, productID string, amount float64, details model.PurchaseDetails) error
	LoadBids(storeID, productID string) ([]model.Bid, error)
	Approve(bidID string) error
	Reject(bidID string) error
	Counter(bidID string, counterAmount float64) error
	AcceptCounter(bidID string) error
	DeclineCounter(bidID string) error
	Tracker(storeID, productID string) *negotiation.AuctionTracker
}

type NegotiationHandler struct {
	service NegotiationServiceInterface
}

func NewNegotiationHandler(service NegotiationServiceInterface) *NegotiationHandler {
	return &NegotiationHandler{service: service}
}

// SubmitBidHandler handles POST /negotiation/bids
func (h *NegotiationHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	details := model.PurchaseDetails{
		ShippingAddress: req.ShippingAddress,
		PaymentDetails:  req.PaymentDetails,
	}
	if err := h.service.SubmitBid(req.StoreID, req.ProductID, req.Amount, details); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitBidHandler: bid submission failed", map[string]any{
			"product_id": req.ProductID,
			"store_id":   req.StoreID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"product_id": req.ProductID,
		"store_id":   req.StoreID,
		"amount":     req.Amount,
	})
}

// GetBidsHandler handles GET /negotiation/bids/:store_id/:product_id
func (h *NegotiationHandler) GetBidsHandler(c *gin.Context) {
	storeID := c.Param("store_id")
	productID := c.Param("product_id")

	bids, err := h.service.LoadBids(storeID, productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{
			"product_id": productID,
			"store_id":   storeID,
			"error":      err.Error(),
		})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// bidAction runs one manager/buyer decision addressed by bid ID and writes
// the uniform response
func (h *NegotiationHandler) bidAction(c *gin.Context, handlerName, successMsg string, action func(bidID string) error) {
	bidID := c.Param("bid_id")

	if err := action(bidID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": action failed", map[string]any{
			"bid_id": bidID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{"bid_id": bidID})
}

// ApproveBidHandler handles POST /negotiation/bids/:bid_id/approve
func (h *NegotiationHandler) ApproveBidHandler(c *gin.Context) {
	h.bidAction(c, "ApproveBidHandler", "bid approved", h.service.Approve)
}

// RejectBidHandler handles POST /negotiation/bids/:bid_id/reject
func (h *NegotiationHandler) RejectBidHandler(c *gin.Context) {
	h.bidAction(c, "RejectBidHandler", "bid rejected", h.service.Reject)
}

// CounterBidHandler handles POST /negotiation/bids/:bid_id/counter
func (h *NegotiationHandler) CounterBidHandler(c *gin.Context) {
	var req helpers.CounterBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CounterBidHandler", err)
		return
	}

	h.bidAction(c, "CounterBidHandler", "counter-offer proposed", func(bidID string) error {
		return h.service.Counter(bidID, req.Amount)
	})
}

// AcceptCounterHandler handles POST /negotiation/bids/:bid_id/counter/accept
func (h *NegotiationHandler) AcceptCounterHandler(c *gin.Context) {
	h.bidAction(c, "AcceptCounterHandler", "counter-offer accepted", h.service.AcceptCounter)
}

// DeclineCounterHandler handles POST /negotiation/bids/:bid_id/counter/decline
func (h *NegotiationHandler) DeclineCounterHandler(c *gin.Context) {
	h.bidAction(c, "DeclineCounterHandler", "counter-offer declined", h.service.DeclineCounter)
}

// GetAuctionStatusHandler handles GET /negotiation/auctions/:store_id/:product_id
func (h *NegotiationHandler) GetAuctionStatusHandler(c *gin.Context) {
	storeID := c.Param("store_id")
	productID := c.Param("product_id")

	snapshot := h.service.Tracker(storeID, productID).Snapshot()
	resp := helpers.AuctionStatusResponse{
		StoreID:         snapshot.StoreID,
		ProductID:       snapshot.ProductID,
		StartingPrice:   snapshot.StartingPrice,
		CurrentMaxOffer: snapshot.CurrentMaxOffer,
		TimeLeftMillis:  snapshot.TimeLeftMillis,
		Ended:           snapshot.Ended,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction status retrieved successfully")
}

// SubmitAuctionOfferHandler handles POST /negotiation/auctions/offer
func (h *NegotiationHandler) SubmitAuctionOfferHandler(c *gin.Context) {
	var req helpers.AuctionOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitAuctionOfferHandler", err)
		return
	}

	tracker := h.service.Tracker(req.StoreID, req.ProductID)
	details := model.PurchaseDetails{
		ShippingAddress: req.ShippingAddress,
		PaymentDetails:  req.PaymentDetails,
	}
	if err := tracker.SubmitOffer(req.Amount, details); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitAuctionOfferHandler: offer failed", map[string]any{
			"product_id": req.ProductID,
			"store_id":   req.StoreID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "auction offer submitted successfully")
	helpers.LogSuccess("SubmitAuctionOfferHandler", "auction offer submitted successfully", map[string]any{
		"product_id": req.ProductID,
		"store_id":   req.StoreID,
		"amount":     req.Amount,
	})
}
