package domain

// EmailSettings toggles outbound notification emails per event type.
type EmailSettings struct {
	OrderUpdates     bool `json:"order_updates" bson:"order_updates"`
	NewClients       bool `json:"new_clients" bson:"new_clients"`
	PipelineMovement bool `json:"pipeline_movement" bson:"pipeline_movement"`
	WeeklyReports    bool `json:"weekly_reports" bson:"weekly_reports"`
}

// NotificationSettings toggles in-app notification surfaces.
type NotificationSettings struct {
	Push    bool `json:"push" bson:"push"`
	Desktop bool `json:"desktop" bson:"desktop"`
	Sound   bool `json:"sound" bson:"sound"`
}

// Settings is the single process-wide settings record. TaxRate is the
// percentage snapshotted onto orders at pricing time.
type Settings struct {
	CompanyName   string               `json:"company_name" bson:"company_name"`
	CompanyEmail  string               `json:"company_email" bson:"company_email"`
	Industry      string               `json:"industry" bson:"industry"`
	Currency      string               `json:"currency" bson:"currency"`
	TaxRate       float64              `json:"tax_rate" bson:"tax_rate"`
	Timezone      string               `json:"timezone" bson:"timezone"`
	DateFormat    string               `json:"date_format" bson:"date_format"`
	EmailSettings EmailSettings        `json:"email_settings" bson:"email_settings"`
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
}

// DefaultSettings returns the settings served before any upsert happens.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:  "SOA East LLC",
		CompanyEmail: "contact@soaeast.com",
		Industry:     "Promotional Products",
		Currency:     "USD",
		TaxRate:      DefaultTaxRatePercent,
		Timezone:     "America/New_York",
		DateFormat:   "MM/DD/YYYY",
		EmailSettings: EmailSettings{
			OrderUpdates:     true,
			NewClients:       true,
			PipelineMovement: true,
			WeeklyReports:    true,
		},
		Notifications: NotificationSettings{
			Push:    true,
			Desktop: true,
			Sound:   false,
		},
	}
}

// SettingsPatch upserts only the supplied fields.
type SettingsPatch struct {
	CompanyName   *string
	CompanyEmail  *string
	Industry      *string
	Currency      *string
	TaxRate       *float64
	Timezone      *string
	DateFormat    *string
	EmailSettings *EmailSettings
	Notifications *NotificationSettings
}

func (p SettingsPatch) IsEmpty() bool {
	return p.CompanyName == nil && p.CompanyEmail == nil && p.Industry == nil &&
		p.Currency == nil && p.TaxRate == nil && p.Timezone == nil &&
		p.DateFormat == nil && p.EmailSettings == nil && p.Notifications == nil
}
