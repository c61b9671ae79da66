package kv

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNilValue = errors.New("kv: nil value")

type Store interface {
	// Get returns the JSON document stored under key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

func encode(value any) ([]byte, error) {
	if value == nil {
		return nil, ErrNilValue
	}
	return json.Marshal(value)
}
