package coin

import (
	"Panel-API/pkg/kv"
	"context"

	"github.com/tidwall/gjson"
)

type (
	CoinRepository interface {
		// GetUserBalance returns the stored balance, or 0 when none is stored.
		GetUserBalance(ctx context.Context, userID string) (float64, error)
		SetUserBalance(ctx context.Context, userID string, coins float64) error
		DeleteUserBalance(ctx context.Context, userID string) error
	}

	coinRepository struct {
		store kv.Store
	}
)

func NewCoinRepository(store kv.Store) CoinRepository {
	return &coinRepository{
		store: store,
	}
}

func (r *coinRepository) GetUserBalance(ctx context.Context, userID string) (float64, error) {
	value, found, err := r.store.Get(ctx, kv.CoinsKey(userID))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	balance := gjson.ParseBytes(value)
	if balance.Type != gjson.Number {
		return 0, nil
	}
	return balance.Num, nil
}

func (r *coinRepository) SetUserBalance(ctx context.Context, userID string, coins float64) error {
	return r.store.Set(ctx, kv.CoinsKey(userID), coins)
}

func (r *coinRepository) DeleteUserBalance(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, kv.CoinsKey(userID))
}
