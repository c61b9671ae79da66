package handlers

import (
	"Panel-API/domain"
	"Panel-API/internal/api/presenters"
	"Panel-API/pkg/plan"

	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		SetPlan(c *fiber.Ctx) error
		SetResources(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
	}
)

func NewPlanHandler(planService plan.PlanService) PlanHandler {
	return &planHandler{
		planService: planService,
	}
}

func (h *planHandler) SetPlan(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := domain.SetPlanRequest{
		ID:      stringField(body, "id"),
		Package: stringField(body, "package"),
	}
	if err := h.planService.SetPlan(c.Context(), req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c)
}

func (h *planHandler) SetResources(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := domain.SetResourcesRequest{
		ID:      stringField(body, "id"),
		RAM:     numberField(body, "ram"),
		Disk:    numberField(body, "disk"),
		CPU:     numberField(body, "cpu"),
		Servers: numberField(body, "servers"),
	}
	if err := h.planService.SetResources(c.Context(), req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c)
}
