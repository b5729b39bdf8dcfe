package ports

import "context"

// BlobStore is a string-keyed store of opaque values. Saving overwrites the
// whole value; there are no partial writes or versions.
type BlobStore interface {
	// Load returns the value under key, or errs.ErrObjectNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the value under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
