package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soaeast/crm-api/internal/core/domain"
)

const (
	settingsCollection = "settings"
	settingsDocID      = "global"
)

type settingsDoc struct {
	ID              string `bson:"_id"`
	domain.Settings `bson:",inline"`
}

// SettingsRepository keeps the single settings document under a fixed _id.
// Upserts read, merge and replace; with one document and an admin-only
// surface the lost-update window is acceptable.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := *current
	if patch.CompanyName != nil {
		merged.CompanyName = *patch.CompanyName
	}
	if patch.CompanyEmail != nil {
		merged.CompanyEmail = *patch.CompanyEmail
	}
	if patch.Industry != nil {
		merged.Industry = *patch.Industry
	}
	if patch.Currency != nil {
		merged.Currency = *patch.Currency
	}
	if patch.TaxRate != nil {
		merged.TaxRate = *patch.TaxRate
	}
	if patch.Timezone != nil {
		merged.Timezone = *patch.Timezone
	}
	if patch.DateFormat != nil {
		merged.DateFormat = *patch.DateFormat
	}
	if patch.EmailSettings != nil {
		merged.EmailSettings = *patch.EmailSettings
	}
	if patch.Notifications != nil {
		merged.Notifications = *patch.Notifications
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID},
		settingsDoc{ID: settingsDocID, Settings: merged},
		options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &merged, nil
}
