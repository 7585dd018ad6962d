package domain

import "time"

// Broker is an external sales agent working a territory on commission.
// TotalSales/TotalDeals accumulate through RecordSale and are never
// recomputed from source data.
type Broker struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	Company        string    `json:"company" bson:"company"`
	Email          string    `json:"email" bson:"email"`
	Phone          string    `json:"phone" bson:"phone"`
	Territory      string    `json:"territory" bson:"territory"`
	CommissionRate float64   `json:"commission_rate" bson:"commission_rate"`
	Status         string    `json:"status" bson:"status"`
	Notes          string    `json:"notes" bson:"notes"`
	TotalSales     float64   `json:"total_sales" bson:"total_sales"`
	TotalDeals     int       `json:"total_deals" bson:"total_deals"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type BrokerPatch struct {
	Name           *string
	Company        *string
	Email          *string
	Phone          *string
	Territory      *string
	CommissionRate *float64
	Status         *string
	Notes          *string
}

func (p BrokerPatch) IsEmpty() bool {
	return p == BrokerPatch{}
}
