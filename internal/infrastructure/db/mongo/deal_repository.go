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

const dealsCollection = "deals"

// DealRepository stores pipeline opportunities, newest first by the date
// they entered the pipeline.
type DealRepository struct {
	coll *mongo.Collection
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{coll: db.Collection(dealsCollection)}
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, deal)
	return err
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (*domain.Deal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var deal domain.Deal
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&deal); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Deal")
		}
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) List(ctx context.Context, filter ports.DealFilter) ([]*domain.Deal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Stage != "" {
		query["stage"] = filter.Stage
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Search != "" {
		query["$or"] = searchAny(filter.Search, "client_name", "product_description")
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "date_entered", Value: -1}})
	if filter.Limit > 0 {
		findOpts.SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, err
	}
	deals := make([]*domain.Deal, 0)
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *DealRepository) UpdateFields(ctx context.Context, id string, patch domain.DealPatch, closedAt *time.Time) (*domain.Deal, error) {
	set := bson.M{}
	if patch.ClientName != nil {
		set["client_name"] = *patch.ClientName
	}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.ProductDescription != nil {
		set["product_description"] = *patch.ProductDescription
	}
	if patch.Stage != nil {
		set["stage"] = *patch.Stage
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.LossReason != nil {
		set["loss_reason"] = *patch.LossReason
	}
	if closedAt != nil {
		set["date_closed"] = *closedAt
	}
	if len(set) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var deal domain.Deal
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&deal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Deal")
		}
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Deal")
	}
	return nil
}
