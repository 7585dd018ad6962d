package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

const integrationsCollection = "integrations"

type IntegrationRepository struct {
	coll *mongo.Collection
}

func NewIntegrationRepository(db *mongo.Database) *IntegrationRepository {
	return &IntegrationRepository{coll: db.Collection(integrationsCollection)}
}

func (r *IntegrationRepository) Create(ctx context.Context, integration *domain.Integration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, integration)
	return err
}

func (r *IntegrationRepository) FindByID(ctx context.Context, id string) (*domain.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var integration domain.Integration
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&integration); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Integration")
		}
		return nil, err
	}
	return &integration, nil
}

func (r *IntegrationRepository) List(ctx context.Context, filter ports.IntegrationFilter) ([]*domain.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.IntegrationType != "" {
		query["integration_type"] = filter.IntegrationType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	integrations := make([]*domain.Integration, 0)
	if err := cursor.All(ctx, &integrations); err != nil {
		return nil, err
	}
	return integrations, nil
}

func (r *IntegrationRepository) UpdateFields(ctx context.Context, id string, patch domain.IntegrationPatch) (*domain.Integration, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Provider != nil {
		set["provider"] = *patch.Provider
	}
	if patch.APIKey != nil {
		set["api_key"] = *patch.APIKey
	}
	if patch.WebhookURL != nil {
		set["webhook_url"] = *patch.WebhookURL
	}
	if patch.Settings != nil {
		set["settings"] = *patch.Settings
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if len(set) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var integration domain.Integration
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&integration)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Integration")
		}
		return nil, err
	}
	return &integration, nil
}

func (r *IntegrationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Integration")
	}
	return nil
}

// MarkTested flips the integration to active and stamps the test time.
func (r *IntegrationRepository) MarkTested(ctx context.Context, id string, at time.Time) (*domain.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var integration domain.Integration
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"status": "active", "last_tested_at": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&integration)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Integration")
		}
		return nil, err
	}
	return &integration, nil
}
