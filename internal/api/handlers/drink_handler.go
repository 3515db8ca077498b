package handlers

import (
	"Coffee-Shop-API/domain"
	"Coffee-Shop-API/internal/api/presenters"
	"Coffee-Shop-API/pkg/drink"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DrinkHandler interface {
		GetDrinks(c *fiber.Ctx) error
		GetDrinksDetail(c *fiber.Ctx) error
		CreateDrink(c *fiber.Ctx) error
		UpdateDrink(c *fiber.Ctx) error
		DeleteDrink(c *fiber.Ctx) error
	}

	drinkHandler struct {
		drinkService drink.DrinkService
		validator    *validator.Validate
	}
)

func NewDrinkHandler(drinkService drink.DrinkService, validator *validator.Validate) DrinkHandler {
	return &drinkHandler{
		drinkService: drinkService,
		validator:    validator,
	}
}

func (h *drinkHandler) GetDrinks(c *fiber.Ctx) error {
	drinks, err := h.drinkService.GetDrinks(c.Context())
	if err != nil {
		return errorResponse(c, err, domain.MessageFailedGetDrinks)
	}
	return presenters.DrinksResponse(c, drinks)
}

func (h *drinkHandler) GetDrinksDetail(c *fiber.Ctx) error {
	drinks, err := h.drinkService.GetDrinksDetail(c.Context())
	if err != nil {
		return errorResponse(c, err, domain.MessageFailedGetDrinks)
	}
	return presenters.DrinksResponse(c, drinks)
}

func (h *drinkHandler) CreateDrink(c *fiber.Ctx) error {
	req := new(domain.CreateDrinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateDrink)
	}

	res, err := h.drinkService.CreateDrink(c.Context(), *req)
	if err != nil {
		return errorResponse(c, err, domain.MessageFailedCreateDrink)
	}

	return presenters.DrinksResponse(c, []domain.DrinkResponse{res})
}

func (h *drinkHandler) UpdateDrink(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageInvalidDrinkID)
	}

	req := new(domain.UpdateDrinkRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedUpdateDrink)
	}

	res, err := h.drinkService.UpdateDrink(c.Context(), id, *req)
	if err != nil {
		return errorResponse(c, err, domain.MessageFailedUpdateDrink)
	}

	return presenters.DrinksResponse(c, []domain.DrinkResponse{res})
}

func (h *drinkHandler) DeleteDrink(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageInvalidDrinkID)
	}

	if err := h.drinkService.DeleteDrink(c.Context(), id); err != nil {
		return errorResponse(c, err, domain.MessageFailedDeleteDrink)
	}

	return presenters.DeleteResponse(c, id)
}

// errorResponse maps service errors onto the uniform error envelope.
func errorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrDrinkNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageDrinkNotFound)
	case errors.Is(err, domain.ErrInvalidRecipe):
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageInvalidRecipe)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
	}
}
