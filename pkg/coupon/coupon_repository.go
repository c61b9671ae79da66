package coupon

import (
	"Panel-API/domain"
	"Panel-API/pkg/kv"
	"context"
	"encoding/json"
)

type (
	CouponRepository interface {
		GetCoupon(ctx context.Context, code string) (*domain.Coupon, error)
		Exists(ctx context.Context, code string) (bool, error)
		SaveCoupon(ctx context.Context, code string, coupon domain.Coupon) error
		DeleteCoupon(ctx context.Context, code string) error
	}

	couponRepository struct {
		store kv.Store
	}
)

func NewCouponRepository(store kv.Store) CouponRepository {
	return &couponRepository{store: store}
}

// GetCoupon returns nil when no coupon is stored under code.
func (r *couponRepository) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	value, found, err := r.store.Get(ctx, kv.CouponKey(code))
	if err != nil || !found {
		return nil, err
	}

	var coupon domain.Coupon
	if err := json.Unmarshal(value, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) Exists(ctx context.Context, code string) (bool, error) {
	value, found, err := r.store.Get(ctx, kv.CouponKey(code))
	if err != nil {
		return false, err
	}
	return found && kv.Truthy(value), nil
}

func (r *couponRepository) SaveCoupon(ctx context.Context, code string, coupon domain.Coupon) error {
	return r.store.Set(ctx, kv.CouponKey(code), coupon)
}

func (r *couponRepository) DeleteCoupon(ctx context.Context, code string) error {
	return r.store.Delete(ctx, kv.CouponKey(code))
}
