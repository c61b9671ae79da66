package kv

import (
	"context"
	"errors"

	"github.com/hashicorp/go-memdb"
)

const memoryTable = "key_value_store"

type memoryRow struct {
	Key   string
	Value []byte
}

type memoryStore struct {
	db *memdb.MemDB
}

// NewMemoryStore returns a process-local store. Nothing survives a restart.
func NewMemoryStore() (Store, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memoryTable: {
				Name: memoryTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	return &memoryStore{db: db}, nil
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memoryTable, "id", key)
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}
	row := raw.(*memoryRow)
	value := make([]byte, len(row.Value))
	copy(value, row.Value)
	return value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value any) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(memoryTable, &memoryRow{Key: key, Value: data}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Delete(memoryTable, &memoryRow{Key: key}); err != nil {
		if errors.Is(err, memdb.ErrNotFound) {
			return nil
		}
		return err
	}
	txn.Commit()
	return nil
}
