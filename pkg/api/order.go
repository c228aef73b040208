package api

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemRequest представляет одну позицию создаваемого заказа
type OrderItemRequest struct {
	ProductID uuid.UUID  `json:"productId"`
	VariantID *uuid.UUID `json:"variantId,omitempty"` // nil для товара без вариантов
	Quantity  int        `json:"quantity"`
}

// CreateOrderRequest представляет запрос на оформление заказа.
// initData — строка идентификации из Telegram Mini App, проверяется сервером.
type CreateOrderRequest struct {
	InitData     string             `json:"initData"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Comment      string             `json:"comment,omitempty"`
	PromoCode    string             `json:"promoCode,omitempty"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse представляет ответ на успешное оформление заказа
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// OrderItem представляет позицию заказа со снапшотами на момент покупки.
// Снапшоты нужны, чтобы заказ оставался читаемым после изменения товара.
type OrderItem struct {
	ProductID           uuid.UUID `json:"productId"`
	TitleSnapshot       string    `json:"titleSnapshot"`
	VariantNameSnapshot string    `json:"variantNameSnapshot,omitempty"`
	PriceMinorSnapshot  int64     `json:"priceMinorSnapshot"`
	Quantity            int       `json:"quantity"`
}

// Order представляет заказ в админке
type Order struct {
	ID             uuid.UUID   `json:"id"`
	SubtotalMinor  int64       `json:"subtotalMinor"`
	DiscountMinor  int64       `json:"discountMinor"`
	TotalMinor     int64       `json:"totalMinor"`
	Currency       string      `json:"currency"`
	CustomerName   string      `json:"customerName"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	Comment        string      `json:"comment,omitempty"`
	TgUserID       int64       `json:"tgUserId"`
	TgUsername     string      `json:"tgUsername,omitempty"`
	Status         string      `json:"status"`
	TrackingNumber string      `json:"trackingNumber,omitempty"`
	PromoCode      string      `json:"promoCode,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	Items          []OrderItem `json:"items"`
}

// PromoCode представляет промокод магазина
type PromoCode struct {
	ID                  uuid.UUID `json:"id"`
	Code                string    `json:"code"`
	DiscountPercent     int       `json:"discountPercent"`
	DiscountAmountMinor int64     `json:"discountAmountMinor"`
	MaxUses             *int      `json:"maxUses"` // nil — без ограничения
	UsesCount           int       `json:"usesCount"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"createdAt"`
}
