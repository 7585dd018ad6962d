package domain

import "time"

// Client is a CRM account record. The total_orders/total_revenue counters
// are incremented when orders are created and are not reconciled afterwards,
// so they can drift from the actual order totals.
type Client struct {
	ID            string     `json:"id" bson:"id"`
	Name          string     `json:"name" bson:"name"`
	Email         string     `json:"email" bson:"email"`
	Industry      string     `json:"industry" bson:"industry"`
	Tier          string     `json:"tier" bson:"tier"`
	TotalRevenue  float64    `json:"total_revenue" bson:"total_revenue"`
	TotalOrders   int        `json:"total_orders" bson:"total_orders"`
	LastOrderDate *time.Time `json:"last_order_date" bson:"last_order_date"`
	Status        string     `json:"status" bson:"status"`
	Phone         string     `json:"phone" bson:"phone"`
	Address       string     `json:"address" bson:"address"`
	City          string     `json:"city" bson:"city"`
	State         string     `json:"state" bson:"state"`
	ZipCode       string     `json:"zip_code" bson:"zip_code"`
	ContactPerson string     `json:"contact_person" bson:"contact_person"`
	ContactTitle  string     `json:"contact_title" bson:"contact_title"`
	Website       string     `json:"website" bson:"website"`
	Notes         string     `json:"notes" bson:"notes"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
}

type ClientPatch struct {
	Name          *string
	Email         *string
	Industry      *string
	Tier          *string
	Status        *string
	Phone         *string
	Address       *string
	City          *string
	State         *string
	ZipCode       *string
	ContactPerson *string
	ContactTitle  *string
	Website       *string
	Notes         *string
}

func (p ClientPatch) IsEmpty() bool {
	return p == ClientPatch{}
}

// ClientNote is one entry in a client's activity log.
type ClientNote struct {
	ID            string    `json:"id" bson:"id"`
	ClientID      string    `json:"client_id" bson:"client_id"`
	Content       string    `json:"content" bson:"content"`
	NoteType      string    `json:"note_type" bson:"note_type"`
	CreatedBy     string    `json:"created_by" bson:"created_by"`
	CreatedByName string    `json:"created_by_name" bson:"created_by_name"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
