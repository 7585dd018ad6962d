package domain

import "time"

// Integration is a third-party service hookup. The API key is stored but
// never serialized back to clients.
type Integration struct {
	ID              string            `json:"id" bson:"id"`
	Name            string            `json:"name" bson:"name"`
	IntegrationType string            `json:"integration_type" bson:"integration_type"`
	Provider        string            `json:"provider" bson:"provider"`
	APIKey          string            `json:"-" bson:"api_key"`
	WebhookURL      string            `json:"webhook_url" bson:"webhook_url"`
	Settings        map[string]string `json:"settings" bson:"settings"`
	Status          string            `json:"status" bson:"status"`
	LastTestedAt    *time.Time        `json:"last_tested_at" bson:"last_tested_at"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}

type IntegrationPatch struct {
	Name       *string
	Provider   *string
	APIKey     *string
	WebhookURL *string
	Settings   *map[string]string
	Status     *string
}

func (p IntegrationPatch) IsEmpty() bool {
	return p.Name == nil && p.Provider == nil && p.APIKey == nil &&
		p.WebhookURL == nil && p.Settings == nil && p.Status == nil
}
