package handlers

import (
	"Panel-API/domain"
	"Panel-API/internal/api/presenters"
	"Panel-API/pkg/coupon"

	"github.com/gofiber/fiber/v2"
)

type (
	CouponHandler interface {
		CreateCoupon(c *fiber.Ctx) error
		RevokeCoupon(c *fiber.Ctx) error
	}

	couponHandler struct {
		couponService coupon.CouponService
	}
)

func NewCouponHandler(couponService coupon.CouponService) CouponHandler {
	return &couponHandler{
		couponService: couponService,
	}
}

func (h *couponHandler) CreateCoupon(c *fiber.Ctx) error {
	body, err := parseObjectBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := domain.CreateCouponRequest{
		Code:    stringField(body, "code"),
		Coins:   numberField(body, "coins"),
		RAM:     numberField(body, "ram"),
		Disk:    numberField(body, "disk"),
		CPU:     numberField(body, "cpu"),
		Servers: numberField(body, "servers"),
	}
	code, err := h.couponService.CreateCoupon(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return c.JSON(domain.CreateCouponResponse{
		Status: domain.StatusSuccess,
		Code:   code,
	})
}

func (h *couponHandler) RevokeCoupon(c *fiber.Ctx) error {
	body, err := parseObjectBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	if !truthyField(body, "code") {
		return presenters.ErrorResponse(c, domain.ErrMissingCode)
	}

	req := domain.RevokeCouponRequest{Code: stringField(body, "code")}
	if err := h.couponService.RevokeCoupon(c.Context(), req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c)
}
