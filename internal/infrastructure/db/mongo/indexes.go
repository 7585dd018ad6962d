package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every repository relies on. It is safe
// to call on every startup; Mongo treats existing definitions as no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{
		usersCollection,
		clientsCollection,
		clientNotesCollection,
		productsCollection,
		ordersCollection,
		dealsCollection,
		brokersCollection,
		channelsCollection,
		integrationsCollection,
		messagesCollection,
		rolesCollection,
	} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, idIndex); err != nil {
			return fmt.Errorf("create id index on %s: %w", name, err)
		}
	}

	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("create email index on %s: %w", usersCollection, err)
	}
	return nil
}
