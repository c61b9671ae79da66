package user

import (
	"Panel-API/pkg/kv"
	"context"

	"github.com/tidwall/gjson"
)

type (
	UserRepository interface {
		// GetPanelID resolves a user id to its panel account id; found is false for unknown users.
		GetPanelID(ctx context.Context, userID string) (panelID string, found bool, err error)
		Exists(ctx context.Context, userID string) (bool, error)
	}

	userRepository struct {
		store kv.Store
	}
)

func NewUserRepository(store kv.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetPanelID(ctx context.Context, userID string) (string, bool, error) {
	value, found, err := r.store.Get(ctx, kv.UserKey(userID))
	if err != nil {
		return "", false, err
	}
	if !found || !kv.Truthy(value) {
		return "", false, nil
	}
	// Numbers keep their stored spelling, strings lose their quotes.
	return gjson.ParseBytes(value).String(), true, nil
}

func (r *userRepository) Exists(ctx context.Context, userID string) (bool, error) {
	_, found, err := r.GetPanelID(ctx, userID)
	return found, err
}
