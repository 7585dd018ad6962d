package domain

import "time"

// Channel is a sales channel (direct, online, retail, wholesale, ...).
type Channel struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	ChannelType    string    `json:"channel_type" bson:"channel_type"`
	Description    string    `json:"description" bson:"description"`
	ContactEmail   string    `json:"contact_email" bson:"contact_email"`
	CommissionRate float64   `json:"commission_rate" bson:"commission_rate"`
	Status         string    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type ChannelPatch struct {
	Name           *string
	ChannelType    *string
	Description    *string
	ContactEmail   *string
	CommissionRate *float64
	Status         *string
}

func (p ChannelPatch) IsEmpty() bool {
	return p == ChannelPatch{}
}
