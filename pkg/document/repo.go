package document

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo is a direct pass-through to one collection: no retries, no
// caching, every store error propagates wrapped to the caller.
type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database, collection string) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection(collection),
	}
}

// List returns documents in store-native order. When page and size are
// both non-negative, the window [page*size, page*size+size) is returned;
// otherwise the whole collection.
func (r *MongoRepo) List(ctx context.Context, page, size int64) ([]Document, error) {
	opts := options.Find()
	if page >= 0 && size >= 0 {
		opts.SetSkip(page * size).SetLimit(size)
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer cursor.Close(ctx)

	return drain(ctx, cursor)
}

// GetByID returns a zero-or-one-element slice; an empty result is how a
// missing id surfaces, interpreting it is the caller's job.
func (r *MongoRepo) GetByID(ctx context.Context, id string) ([]Document, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer cursor.Close(ctx)

	return drain(ctx, cursor)
}

func (r *MongoRepo) Create(ctx context.Context, doc Document) (*CreateResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	out := &CreateResult{Acknowledged: true}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out, nil
}

// Upsert replaces the named fields of the document matching id and
// creates the document when it does not exist. Clients minting their own
// identifiers via PUT is a supported capability, not an accident.
func (r *MongoRepo) Upsert(ctx context.Context, id string, doc Document) (*UpsertResult, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert document: %w", err)
	}

	out := &UpsertResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

// Delete reports zero affected documents for a missing id, it does not
// error.
func (r *MongoRepo) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return &DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

// Count is the store's estimated cardinality, not exact under
// concurrent writes.
func (r *MongoRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

func drain(ctx context.Context, cursor *mongo.Cursor) ([]Document, error) {
	docs := make([]Document, 0)
	for cursor.Next(ctx) {
		var doc Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, encodeID(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor failed: %w", err)
	}
	return docs, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return objectID, nil
}

func encodeID(doc Document) Document {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}
