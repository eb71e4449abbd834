package controller

import (
	"support-chatbot-be/internal/pkg/serverutils"
	"support-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	ShowByTracking(ctx *fiber.Ctx) error
	ShowByEmail(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	StatusSummary(ctx *fiber.Ctx) error
	ChatFormat(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) IOrderController {
	return &orderController{
		orderService: orderService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/orders")

	// Literal segments before the :id wildcard so "tracking" is never
	// parsed as an order ID.
	h.Get("/tracking/:trackingNumber", c.ShowByTracking)
	h.Get("/email/:email", c.ShowByEmail)
	h.Get("/search/:query", c.Search)
	h.Get("/:id/status", c.StatusSummary)
	h.Get("/:id/chat-format", c.ChatFormat)
	h.Get("/:id", c.Show)
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	res, err := c.orderService.GetOrder(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show order", res))
}

func (c *orderController) ShowByTracking(ctx *fiber.Ctx) error {
	res, err := c.orderService.GetTracking(ctx.Context(), ctx.Params("trackingNumber"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show tracking", res))
}

func (c *orderController) ShowByEmail(ctx *fiber.Ctx) error {
	res, err := c.orderService.GetOrdersByEmail(ctx.Context(), ctx.Params("email"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show orders by email", res))
}

func (c *orderController) Search(ctx *fiber.Ctx) error {
	res, err := c.orderService.SearchOrders(ctx.Context(), ctx.Params("query"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search orders", res))
}

func (c *orderController) StatusSummary(ctx *fiber.Ctx) error {
	res, err := c.orderService.GetStatusSummary(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show order status", res))
}

func (c *orderController) ChatFormat(ctx *fiber.Ctx) error {
	res, err := c.orderService.GetChatFormat(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show order chat format", res))
}
