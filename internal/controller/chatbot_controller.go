package controller

import (
	"strconv"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/serverutils"
	"support-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	GetSessionInfo(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)

	h := r.Group("/session")
	h.Post("/new", c.CreateSession)
	h.Get("/:id", c.GetSessionInfo)
	h.Get("/:id/history", c.GetChatHistory)
	h.Delete("/:id/clear", c.ClearSession)
	h.Delete("/:id", c.DeleteSession)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatbotController) GetSessionInfo(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.GetSessionInfo(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))

	res, err := c.chatbotService.GetChatHistory(ctx.Context(), ctx.Params("id"), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat history", res))
}

func (c *chatbotController) ClearSession(ctx *fiber.Ctx) error {
	if err := c.chatbotService.ClearSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear session history", nil))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.chatbotService.DeleteSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
