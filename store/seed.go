package store

import (
	"context"
	"log"
	"time"

	"civicreport-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the queries rely on. Safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	issueIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "latitude", Value: 1}, {Key: "longitude", Value: 1}}},
		{
			Keys:    bson.D{{Key: "booking_reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(IssuesCollection).Indexes().CreateMany(ctx, issueIndexes); err != nil {
		return unavailable("create issue indexes", err)
	}

	_, err := db.Collection(IssueUpdatesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "issue_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return unavailable("create issue update indexes", err)
	}

	_, err = db.Collection(AuthoritiesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return unavailable("create authority indexes", err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "nic", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return unavailable("create user indexes", err)
	}

	log.Println("MongoDB indexes ensured")
	return nil
}

// SeedAuthorities inserts the default authority directory into an empty
// authorities collection. It returns the number of documents inserted.
func SeedAuthorities(ctx context.Context, db *mongo.Database) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll := db.Collection(AuthoritiesCollection)
	existing, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, unavailable("count authorities", err)
	}
	if existing > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	defaults := models.DefaultAuthorities()
	docs := make([]interface{}, 0, len(defaults))
	for _, authority := range defaults {
		authority.ID = primitive.NewObjectID()
		authority.CreatedAt = now
		docs = append(docs, authority)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return 0, unavailable("seed authorities", err)
	}
	log.Printf("Seeded %d authorities", len(docs))
	return len(docs), nil
}
