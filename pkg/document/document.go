package document

import (
	"context"
	"errors"
)

// Document is a schema-free record: both collections store whatever
// fields the caller supplied, keyed by the store-assigned _id.
type Document map[string]any

// ErrInvalidID reports an identifier that is not a valid ObjectID hex
// string. It is raised before any store call is made.
var ErrInvalidID = errors.New("invalid document id")

type CreateResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpsertResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type Repository interface {
	List(ctx context.Context, page, size int64) ([]Document, error)
	GetByID(ctx context.Context, id string) ([]Document, error)
	Create(ctx context.Context, doc Document) (*CreateResult, error)
	Upsert(ctx context.Context, id string, doc Document) (*UpsertResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}
