package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

const brokersCollection = "brokers"

type BrokerRepository struct {
	coll *mongo.Collection
}

func NewBrokerRepository(db *mongo.Database) *BrokerRepository {
	return &BrokerRepository{coll: db.Collection(brokersCollection)}
}

func (r *BrokerRepository) Create(ctx context.Context, broker *domain.Broker) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, broker)
	return err
}

func (r *BrokerRepository) FindByID(ctx context.Context, id string) (*domain.Broker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var broker domain.Broker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&broker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Broker")
		}
		return nil, err
	}
	return &broker, nil
}

func (r *BrokerRepository) List(ctx context.Context, filter ports.BrokerFilter) ([]*domain.Broker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Territory != "" {
		query["territory"] = filter.Territory
	}
	if filter.Search != "" {
		query["$or"] = searchAny(filter.Search, "name", "company", "email")
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	brokers := make([]*domain.Broker, 0)
	if err := cursor.All(ctx, &brokers); err != nil {
		return nil, err
	}
	return brokers, nil
}

func (r *BrokerRepository) UpdateFields(ctx context.Context, id string, patch domain.BrokerPatch) (*domain.Broker, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Territory != nil {
		set["territory"] = *patch.Territory
	}
	if patch.CommissionRate != nil {
		set["commission_rate"] = *patch.CommissionRate
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if len(set) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var broker domain.Broker
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&broker)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Broker")
		}
		return nil, err
	}
	return &broker, nil
}

func (r *BrokerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Broker")
	}
	return nil
}

// RecordSale adds the amount to the broker's running totals in one atomic
// update and returns the refreshed record.
func (r *BrokerRepository) RecordSale(ctx context.Context, id string, amount float64) (*domain.Broker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var broker domain.Broker
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id},
		bson.M{"$inc": bson.M{"total_sales": amount, "total_deals": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&broker)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Broker")
		}
		return nil, err
	}
	return &broker, nil
}
