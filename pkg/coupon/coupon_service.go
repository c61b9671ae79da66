package coupon

import (
	"Panel-API/domain"
	"Panel-API/internal/utils"
	"context"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const generatedCodeLength = 13

type (
	CouponService interface {
		CreateCoupon(ctx context.Context, req domain.CreateCouponRequest) (string, error)
		RevokeCoupon(ctx context.Context, req domain.RevokeCouponRequest) error
	}

	couponService struct {
		couponRepository CouponRepository
		validator        *validator.Validate
	}
)

func NewCouponService(couponRepository CouponRepository, validator *validator.Validate) CouponService {
	return &couponService{
		couponRepository: couponRepository,
		validator:        validator,
	}
}

// CreateCoupon writes the coupon under its code, replacing any coupon already stored there.
func (s *couponService) CreateCoupon(ctx context.Context, req domain.CreateCouponRequest) (string, error) {
	code := generateCode()
	if req.Code != nil {
		code = truncate(*req.Code, utils.MaxCodeLength)
	}
	if !utils.ValidCouponCode(s.validator, code) {
		return "", domain.ErrIllegalCharacters
	}

	coupon := domain.Coupon{
		Coins:   valueOrZero(req.Coins),
		RAM:     valueOrZero(req.RAM),
		Disk:    valueOrZero(req.Disk),
		CPU:     valueOrZero(req.CPU),
		Servers: valueOrZero(req.Servers),
	}

	switch {
	case invalidAmount(coupon.Coins):
		return "", domain.ErrCouponCoins
	case invalidAmount(coupon.RAM):
		return "", domain.ErrCouponRAM
	case invalidAmount(coupon.Disk):
		return "", domain.ErrCouponDisk
	case invalidAmount(coupon.CPU):
		return "", domain.ErrCouponCPU
	case invalidAmount(coupon.Servers):
		return "", domain.ErrCouponServers
	}

	if coupon.IsEmpty() {
		return "", domain.ErrEmptyCoupon
	}

	if err := s.couponRepository.SaveCoupon(ctx, code, coupon); err != nil {
		return "", err
	}
	return code, nil
}

// RevokeCoupon deletes a coupon. Malformed and unknown codes both yield ErrInvalidCode.
func (s *couponService) RevokeCoupon(ctx context.Context, req domain.RevokeCouponRequest) error {
	if req.Code == nil {
		return domain.ErrInvalidCode
	}
	code := *req.Code
	if code == "" {
		return domain.ErrMissingCode
	}
	if !utils.ValidCouponCode(s.validator, code) {
		return domain.ErrInvalidCode
	}

	exists, err := s.couponRepository.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrInvalidCode
	}

	return s.couponRepository.DeleteCoupon(ctx, code)
}

func generateCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:generatedCodeLength]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// invalidAmount rejects negatives and anything that cannot be stored as a JSON number.
func invalidAmount(v float64) bool {
	return v < 0 || math.IsInf(v, 0) || math.IsNaN(v)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
