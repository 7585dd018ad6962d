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

const (
	clientsCollection     = "clients"
	clientNotesCollection = "client_notes"
)

// ClientRepository stores client accounts and their activity-log notes.
type ClientRepository struct {
	coll  *mongo.Collection
	notes *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		coll:  db.Collection(clientsCollection),
		notes: db.Collection(clientNotesCollection),
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, client)
	return err
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var client domain.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Client")
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, filter ports.ClientFilter) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Tier != "" {
		query["tier"] = filter.Tier
	}
	if filter.Industry != "" {
		query["industry"] = filter.Industry
	}
	if filter.Search != "" {
		query["$or"] = searchAny(filter.Search, "name", "email")
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	clients := make([]*domain.Client, 0)
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) UpdateFields(ctx context.Context, id string, patch domain.ClientPatch) (*domain.Client, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Industry != nil {
		set["industry"] = *patch.Industry
	}
	if patch.Tier != nil {
		set["tier"] = *patch.Tier
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.City != nil {
		set["city"] = *patch.City
	}
	if patch.State != nil {
		set["state"] = *patch.State
	}
	if patch.ZipCode != nil {
		set["zip_code"] = *patch.ZipCode
	}
	if patch.ContactPerson != nil {
		set["contact_person"] = *patch.ContactPerson
	}
	if patch.ContactTitle != nil {
		set["contact_title"] = *patch.ContactTitle
	}
	if patch.Website != nil {
		set["website"] = *patch.Website
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if len(set) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var client domain.Client
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Client")
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Client")
	}
	return nil
}

// RecordOrder bumps the client's order counters in a single update. A
// dangling client reference is tolerated silently so the order write that
// triggered it is never rolled back.
func (r *ClientRepository) RecordOrder(ctx context.Context, id string, amount float64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{"total_orders": 1, "total_revenue": amount},
		"$set": bson.M{"last_order_date": at},
	})
	return err
}

func (r *ClientRepository) ListNotes(ctx context.Context, clientID string) ([]*domain.ClientNote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.notes.Find(ctx, bson.M{"client_id": clientID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.ClientNote, 0)
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *ClientRepository) CreateNote(ctx context.Context, note *domain.ClientNote) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.notes.InsertOne(ctx, note)
	return err
}

func (r *ClientRepository) DeleteNote(ctx context.Context, clientID, noteID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.notes.DeleteOne(ctx, bson.M{"id": noteID, "client_id": clientID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Note")
	}
	return nil
}
