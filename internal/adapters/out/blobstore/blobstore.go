// Package blobstore holds the generic collection helpers used to persist
// whole collections as JSON blobs, and the file and in-memory
// implementations of ports.BlobStore.
//
// A collection is always written in full: Persist overwrites the previous
// value under the key, and Load decodes the last value written.
package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Lookup decodes the value stored under key. The boolean is false when the
// key is absent, in which case the zero value of T is returned.
func Lookup[T any](ctx context.Context, store ports.BlobStore, key string) (T, bool, error) {
	var value T

	raw, err := store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("load %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return value, true, nil
}

// Load decodes the value stored under key, or returns def when the key is
// absent.
func Load[T any](ctx context.Context, store ports.BlobStore, key string, def T) (T, error) {
	value, ok, err := Lookup[T](ctx, store, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return value, nil
}

// Persist encodes value as JSON and overwrites the blob under key.
func Persist[T any](ctx context.Context, store ports.BlobStore, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	if err := store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
