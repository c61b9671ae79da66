package handlers

import (
	"Panel-API/domain"
	"Panel-API/internal/api/presenters"
	"Panel-API/pkg/coin"

	"github.com/gofiber/fiber/v2"
)

type (
	CoinHandler interface {
		SetCoins(c *fiber.Ctx) error
	}

	coinHandler struct {
		coinService coin.CoinService
	}
)

func NewCoinHandler(coinService coin.CoinService) CoinHandler {
	return &coinHandler{
		coinService: coinService,
	}
}

func (h *coinHandler) SetCoins(c *fiber.Ctx) error {
	body, err := parseObjectBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := domain.SetCoinsRequest{
		ID:    stringField(body, "id"),
		Coins: numberField(body, "coins"),
	}
	if err := h.coinService.SetCoins(c.Context(), req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c)
}
