package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DocumentStore adalah operasi minimum yang dibutuhkan gateway dari document store.
type DocumentStore interface {
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (any, error)
	Find(ctx context.Context, collection string, limit int64) ([]bson.M, error)
}

// MongoStore implements DocumentStore on one MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc bson.M) (any, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// Find returns up to limit documents in the store's natural order.
func (s *MongoStore) Find(ctx context.Context, collection string, limit int64) ([]bson.M, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]bson.M, 0)
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
