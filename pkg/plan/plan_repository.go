package plan

import (
	"Panel-API/domain"
	"Panel-API/pkg/kv"
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
)

type (
	PlanRepository interface {
		// GetPackage returns the assigned package name; assigned is false when the user runs on the default.
		GetPackage(ctx context.Context, userID string) (name string, assigned bool, err error)
		SetPackage(ctx context.Context, userID string, name string) error
		DeletePackage(ctx context.Context, userID string) error

		// GetExtra returns the resource override, all zero when none (or garbage) is stored.
		GetExtra(ctx context.Context, userID string) (domain.Resources, error)
		SetExtra(ctx context.Context, userID string, extra domain.Resources) error
		DeleteExtra(ctx context.Context, userID string) error
	}

	planRepository struct {
		store kv.Store
	}
)

func NewPlanRepository(store kv.Store) PlanRepository {
	return &planRepository{store: store}
}

func (r *planRepository) GetPackage(ctx context.Context, userID string) (string, bool, error) {
	value, found, err := r.store.Get(ctx, kv.PackageKey(userID))
	if err != nil {
		return "", false, err
	}
	if !found || !kv.Truthy(value) {
		return "", false, nil
	}
	return gjson.ParseBytes(value).String(), true, nil
}

func (r *planRepository) SetPackage(ctx context.Context, userID string, name string) error {
	return r.store.Set(ctx, kv.PackageKey(userID), name)
}

func (r *planRepository) DeletePackage(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, kv.PackageKey(userID))
}

func (r *planRepository) GetExtra(ctx context.Context, userID string) (domain.Resources, error) {
	value, found, err := r.store.Get(ctx, kv.ExtraKey(userID))
	if err != nil {
		return domain.Resources{}, err
	}
	if !found || !gjson.ParseBytes(value).IsObject() {
		return domain.Resources{}, nil
	}

	var extra domain.Resources
	if err := json.Unmarshal(value, &extra); err != nil {
		return domain.Resources{}, nil
	}
	return extra, nil
}

func (r *planRepository) SetExtra(ctx context.Context, userID string, extra domain.Resources) error {
	return r.store.Set(ctx, kv.ExtraKey(userID), extra)
}

func (r *planRepository) DeleteExtra(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, kv.ExtraKey(userID))
}
