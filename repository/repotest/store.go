// Package repotest provides an in-memory DocumentStore for tests.
package repotest

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store keeps collections in insertion order. Set the Err fields to make the
// matching operation fail.
type Store struct {
	mu    sync.Mutex
	names []string
	docs  map[string][]bson.M

	PingErr   error
	ListErr   error
	InsertErr error
	FindErr   error
	// Panic, when set, is raised by ListCollectionNames.
	Panic any
}

func NewStore() *Store {
	return &Store{docs: make(map[string][]bson.M)}
}

func (s *Store) Ping(context.Context) error { return s.PingErr }

func (s *Store) ListCollectionNames(context.Context) ([]string, error) {
	if s.Panic != nil {
		panic(s.Panic)
	}
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}

func (s *Store) InsertOne(_ context.Context, collection string, doc bson.M) (any, error) {
	if s.InsertErr != nil {
		return nil, s.InsertErr
	}
	if collection == "" {
		return nil, errors.New("collection name cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(bson.M, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	if _, ok := s.docs[collection]; !ok {
		s.names = append(s.names, collection)
	}
	s.docs[collection] = append(s.docs[collection], stored)
	return stored["_id"], nil
}

func (s *Store) Find(_ context.Context, collection string, limit int64) ([]bson.M, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.docs[collection]
	n := int64(len(all))
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]bson.M, n)
	copy(out, all[:n])
	return out, nil
}

// Seed inserts n documents produced by gen into collection.
func (s *Store) Seed(collection string, n int, gen func(i int) bson.M) {
	for i := 0; i < n; i++ {
		_, _ = s.InsertOne(context.Background(), collection, gen(i))
	}
}
