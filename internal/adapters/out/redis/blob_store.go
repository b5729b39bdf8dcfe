package redis

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.BlobStore = (*BlobStore)(nil)

// BlobStore keeps every blob under prefix+key.
type BlobStore struct {
	rdb    goredis.Cmdable
	prefix string
}

func NewBlobStore(rdb goredis.Cmdable, prefix string) *BlobStore {
	return &BlobStore{rdb: rdb, prefix: prefix}
}

func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, errs.NewObjectNotFoundError("blob", key)
		}
		return nil, err
	}
	return value, nil
}

func (s *BlobStore) Save(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}
