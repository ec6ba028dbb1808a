// internal/store/store.go
package store

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names, one per top-level entity.
const (
	CollectionFarmer  = "farmer"
	CollectionBuyer   = "buyer"
	CollectionProduct = "product"
	CollectionOrder   = "order"
	CollectionRoute   = "route"
)

// Lister is the read side of the adapter.
type Lister interface {
	List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
}

// Creator is the write side of the adapter.
type Creator interface {
	Create(ctx context.Context, collection string, entity interface{}) (string, error)
}

// Store is a generic document adapter over a Mongo database. Entities are
// validated before they reach Create; reads come back as plain documents
// without a round-trip through the entity structs.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Create serializes the entity, assigns a fresh string id as _id, inserts
// the document and returns the id.
func (s *Store) Create(ctx context.Context, collection string, entity interface{}) (string, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return "", err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	id := uuid.New().String()
	doc["_id"] = id

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

// List returns every document matching the filter in insertion order. An
// empty filter matches the whole collection.
func (s *Store) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// CollectionNames lists the collections present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}
