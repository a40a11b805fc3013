package helpers

import model "storefront-engine/internal/models"

// Request DTOs
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type CartAddRequest struct {
	StoreID   string `json:"store_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type SubmitBidRequest struct {
	StoreID         string  `json:"store_id" binding:"required"`
	ProductID       string  `json:"product_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	ShippingAddress string  `json:"shipping_address" binding:"required"`
	PaymentDetails  string  `json:"payment_details" binding:"required"`
}

type CounterBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type AuctionOfferRequest struct {
	StoreID         string  `json:"store_id" binding:"required"`
	ProductID       string  `json:"product_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	ShippingAddress string  `json:"shipping_address" binding:"required"`
	PaymentDetails  string  `json:"payment_details" binding:"required"`
}

// Response DTOs
type SessionResponse struct {
	Kind       string `json:"kind"`
	Identifier string `json:"identifier"`
}

type CartResponse struct {
	Lines        []model.CartLine `json:"lines"`
	Total        float64          `json:"total"`
	TotalSavings float64          `json:"total_savings"`
}

type AuctionStatusResponse struct {
	StoreID         string  `json:"store_id"`
	ProductID       string  `json:"product_id"`
	StartingPrice   float64 `json:"starting_price"`
	CurrentMaxOffer float64 `json:"current_max_offer"`
	TimeLeftMillis  int64   `json:"time_left_millis"`
	Ended           bool    `json:"ended"`
}
