package domain

import "time"

// Product is a catalog item offered to clients.
type Product struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Category      string    `json:"category" bson:"category"`
	Description   string    `json:"description" bson:"description"`
	BasePrice     float64   `json:"base_price" bson:"base_price"`
	Badge         *string   `json:"badge" bson:"badge"`
	TotalOrders   int       `json:"total_orders" bson:"total_orders"`
	TotalClients  int       `json:"total_clients" bson:"total_clients"`
	MarginPercent float64   `json:"margin_percent" bson:"margin_percent"`
	ImageURL      *string   `json:"image_url" bson:"image_url"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type ProductPatch struct {
	Name          *string
	Category      *string
	Description   *string
	BasePrice     *float64
	Badge         *string
	MarginPercent *float64
	ImageURL      *string
}

func (p ProductPatch) IsEmpty() bool {
	return p == ProductPatch{}
}
