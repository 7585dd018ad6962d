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

const channelsCollection = "channels"

type ChannelRepository struct {
	coll *mongo.Collection
}

func NewChannelRepository(db *mongo.Database) *ChannelRepository {
	return &ChannelRepository{coll: db.Collection(channelsCollection)}
}

func (r *ChannelRepository) Create(ctx context.Context, channel *domain.Channel) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, channel)
	return err
}

func (r *ChannelRepository) FindByID(ctx context.Context, id string) (*domain.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var channel domain.Channel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&channel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Channel")
		}
		return nil, err
	}
	return &channel, nil
}

func (r *ChannelRepository) List(ctx context.Context, filter ports.ChannelFilter) ([]*domain.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ChannelType != "" {
		query["channel_type"] = filter.ChannelType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["$or"] = searchAny(filter.Search, "name", "description")
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	channels := make([]*domain.Channel, 0)
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *ChannelRepository) UpdateFields(ctx context.Context, id string, patch domain.ChannelPatch) (*domain.Channel, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.ChannelType != nil {
		set["channel_type"] = *patch.ChannelType
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ContactEmail != nil {
		set["contact_email"] = *patch.ContactEmail
	}
	if patch.CommissionRate != nil {
		set["commission_rate"] = *patch.CommissionRate
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if len(set) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var channel domain.Channel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&channel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Channel")
		}
		return nil, err
	}
	return &channel, nil
}

func (r *ChannelRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Channel")
	}
	return nil
}
