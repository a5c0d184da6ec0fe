package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names used across the API.
const (
	Products          = "products"
	ProductCategories = "productcategories"
	Users             = "users"
	Orders            = "orders"
	Transactions      = "transactions"
)

// ErrNotFound is returned by FindOne and UpdateOne when no document matches.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a write violates a unique index
// (products.barcode, users.email, users.username, orders.orderId).
var ErrDuplicate = errors.New("duplicate key")

// Store is the document-store surface the handlers depend on. It is injected
// at startup; handlers never reach for a package-level database handle.
type Store interface {
	// Create inserts a single document and returns its generated id.
	Create(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)

	// CreateMany inserts a batch of documents and returns how many were stored.
	CreateMany(ctx context.Context, collection string, docs []any) (int, error)

	// Find decodes every matching document into out, which must be a pointer
	// to a slice. A nil sort leaves the fetch order unspecified.
	Find(ctx context.Context, collection string, filter any, sort any, out any) error

	// FindOne decodes the first matching document into out, or returns
	// ErrNotFound.
	FindOne(ctx context.Context, collection string, filter any, out any) error

	// UpdateOne applies update to the first matching document, or returns
	// ErrNotFound when nothing matches.
	UpdateOne(ctx context.Context, collection string, filter any, update any) error
}

// IsDuplicate reports whether err came from a unique-index violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
