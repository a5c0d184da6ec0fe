package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *mongo.Database
}

// Connect opens a MongoDB connection, ensures the unique indexes the API
// relies on and returns the Store plus a cleanup func for shutdown.
func Connect(ctx context.Context, uri, dbName string) (Store, func(), error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}
	return &mongoStore{db: db}, cleanup, nil
}

// ensureIndexes creates the unique indexes that back ConflictError handling.
// username is sparse because OAuth-provisioned users have no username.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		Products: {
			{Keys: bson.D{{Key: "barcode", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		},
		Orders: {
			{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func (s *mongoStore) Create(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *mongoStore) CreateMany(ctx context.Context, collection string, docs []any) (int, error) {
	res, err := s.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter any, sort any, out any) error {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter any, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (s *mongoStore) UpdateOne(ctx context.Context, collection string, filter any, update any) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
