package domain

import "time"

// Message is an internal note sent between team members.
type Message struct {
	ID            string    `json:"id" bson:"id"`
	SenderID      string    `json:"sender_id" bson:"sender_id"`
	SenderName    string    `json:"sender_name" bson:"sender_name"`
	RecipientName string    `json:"recipient_name" bson:"recipient_name"`
	Subject       string    `json:"subject" bson:"subject"`
	Content       string    `json:"content" bson:"content"`
	MessageType   string    `json:"message_type" bson:"message_type"`
	IsRead        bool      `json:"is_read" bson:"is_read"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
