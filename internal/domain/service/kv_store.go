package service

import "context"

// KVStore persists application state by key. A missing key is reported with
// ok == false and is never an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
