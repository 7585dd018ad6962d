package domain

import (
	"math"
	"time"
)

// Order statuses as used by the dashboard's open-order count.
const (
	OrderStatusDraft      = "draft"
	OrderStatusProduction = "production"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// DefaultTaxRatePercent applies when no tax rate has been configured.
const DefaultTaxRatePercent = 8.5

// LineItem is one priced product entry within an order. Items are owned by
// exactly one order and replaced wholesale, never edited in place.
type LineItem struct {
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
}

// Order is the aggregate holding line items and their derived totals.
// Subtotal, TaxAmount and Total are always recomputed server-side; TaxRate
// is snapshotted from settings when the order is priced, so later settings
// changes never reprice historical orders.
type Order struct {
	ID              string     `json:"id" bson:"id"`
	OrderCode       string     `json:"order_id" bson:"order_code"`
	ClientID        string     `json:"client_id" bson:"client_id"`
	ClientName      string     `json:"client_name" bson:"-"`
	LineItems       []LineItem `json:"line_items" bson:"line_items"`
	Subtotal        float64    `json:"subtotal" bson:"subtotal"`
	TaxRate         float64    `json:"tax_rate" bson:"tax_rate"`
	TaxAmount       float64    `json:"tax_amount" bson:"tax_amount"`
	Total           float64    `json:"total" bson:"total"`
	Status          string     `json:"status" bson:"status"`
	ProgressPercent int        `json:"progress_percent" bson:"progress_percent"`
	DueDate         string     `json:"due_date" bson:"due_date"`
	Priority        string     `json:"priority" bson:"priority"`
	Notes           string     `json:"notes" bson:"notes"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
}

// OrderPatch carries partially updated fields. Replacing LineItems triggers
// a totals recomputation with the order's stored tax rate.
type OrderPatch struct {
	LineItems       *[]LineItem
	Status          *string
	ProgressPercent *int
	DueDate         *string
	Priority        *string
	Notes           *string
}

func (p OrderPatch) IsEmpty() bool {
	return p.LineItems == nil && p.Status == nil && p.ProgressPercent == nil &&
		p.DueDate == nil && p.Priority == nil && p.Notes == nil
}

// ComputeTotals derives subtotal, tax amount and total from line items and a
// tax rate in percent. The subtotal is the exact sum of quantity × unit
// price; tax and total are rounded to cents. An empty item list yields all
// zeros. The function is pure: it neither validates nor touches any state,
// so callers are responsible for rejecting negative quantities or prices.
func ComputeTotals(items []LineItem, taxRatePercent float64) (subtotal, taxAmount, total float64) {
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	taxAmount = roundCents(subtotal * taxRatePercent / 100)
	total = roundCents(subtotal + taxAmount)
	return subtotal, taxAmount, total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
