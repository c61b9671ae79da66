package handlers

import (
	"Panel-API/internal/api/presenters"
	"Panel-API/pkg/account"

	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		GetUserInfo(c *fiber.Ctx) error
	}

	userHandler struct {
		accountService account.AccountService
	}
)

func NewUserHandler(accountService account.AccountService) UserHandler {
	return &userHandler{
		accountService: accountService,
	}
}

func (h *userHandler) GetUserInfo(c *fiber.Ctx) error {
	info, err := h.accountService.GetUserInfo(c.Context(), c.Query("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return c.JSON(info)
}
