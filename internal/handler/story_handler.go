package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/service"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/utils"
)

const msgStoriesUnavailable = "Stories not yet configured. Please check back soon!"

type StoryHandler struct {
	storyService *service.StoryService
	validator    *utils.Validator
}

func NewStoryHandler(storyService *service.StoryService, validator *utils.Validator) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		validator:    validator,
	}
}

func (h *StoryHandler) GetPrompts(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(h.storyService.PromptsByCategory(category))
	}
	return c.JSON(h.storyService.Prompts())
}

func (h *StoryHandler) ListStories(c *fiber.Ctx) error {
	stories, err := h.storyService.ListStories(c.UserContext(), c.Query("user_id"))
	if err != nil {
		return storyError(c, err)
	}

	return c.JSON(fiber.Map{
		"stories":  stories,
		"progress": service.Progress(stories),
	})
}

func (h *StoryHandler) GetStory(c *fiber.Ctx) error {
	story, err := h.storyService.GetStory(c.UserContext(), c.Params("id"))
	if err != nil {
		return storyError(c, err)
	}
	if story == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Story not found"))
	}

	return c.JSON(story)
}

func (h *StoryHandler) CreateStory(c *fiber.Ctx) error {
	var req models.StoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	id, err := h.storyService.CreateStory(c.UserContext(), c.Query("user_id"), req)
	if err != nil {
		return storyError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *StoryHandler) UpdateStory(c *fiber.Ctx) error {
	var req models.StoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.storyService.UpdateStory(c.UserContext(), c.Params("id"), c.Query("user_id"), req); err != nil {
		return storyError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StoryHandler) DeleteStory(c *fiber.Ctx) error {
	if err := h.storyService.DeleteStory(c.UserContext(), c.Params("id")); err != nil {
		return storyError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func storyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotAvailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse(msgStoriesUnavailable))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
}
