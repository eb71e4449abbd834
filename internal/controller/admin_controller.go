package controller

import (
	"support-chatbot-be/internal/pkg/serverutils"
	"support-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	RebuildIndex(ctx *fiber.Ctx) error
	KnowledgeStats(ctx *fiber.Ctx) error
}

type adminController struct {
	knowledgeService service.IKnowledgeService
}

func NewAdminController(knowledgeService service.IKnowledgeService) IAdminController {
	return &adminController{
		knowledgeService: knowledgeService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("/rebuild-index", c.RebuildIndex)
	h.Get("/knowledge/stats", c.KnowledgeStats)
}

func (c *adminController) RebuildIndex(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.RebuildIndex(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success queue index rebuild", res))
}

func (c *adminController) KnowledgeStats(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show knowledge stats", res))
}
