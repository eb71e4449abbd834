package controller

import (
	"time"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/serverutils"
	"support-chatbot-be/internal/service"
	"support-chatbot-be/pkg/orders"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	chatbotService service.IChatbotService
	orderStore     *orders.Store
}

func NewHealthController(chatbotService service.IChatbotService, orderStore *orders.Store) IHealthController {
	return &healthController{
		chatbotService: chatbotService,
		orderStore:     orderStore,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	status := "healthy"
	if !c.chatbotService.Ready() {
		status = "initializing"
	}

	res := dto.HealthResponse{
		Status:         status,
		RagInitialized: c.chatbotService.Ready(),
		ActiveSessions: c.chatbotService.ActiveSessions(),
		OrdersLoaded:   c.orderStore.Count(),
		Timestamp:      time.Now(),
	}

	return ctx.JSON(serverutils.SuccessResponse("Success health check", res))
}
