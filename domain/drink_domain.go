package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageFailedGetDrinks    = "failed to retrieve drinks"
	MessageFailedCreateDrink  = "failed to create drink"
	MessageFailedUpdateDrink  = "failed to update drink"
	MessageFailedDeleteDrink  = "failed to delete drink"
	MessageDrinkNotFound      = "drink not found"
	MessageInvalidRecipe      = "recipe must be a JSON array of ingredient objects"
	MessageInvalidDrinkID     = "drink id must be an integer"

	ErrDrinkNotFound = errors.New("drink not found")
	ErrInvalidRecipe = errors.New("recipe must be a JSON array of ingredient objects")
	ErrCorruptRecipe = errors.New("stored recipe is not valid JSON")
)

type (
	CreateDrinkRequest struct {
		Title  string          `json:"title" validate:"required,max=80"`
		Recipe json.RawMessage `json:"recipe" validate:"required"`
	}

	UpdateDrinkRequest struct {
		Title  string          `json:"title" validate:"omitempty,max=80"`
		Recipe json.RawMessage `json:"recipe" validate:"omitempty"`
	}

	// DrinkResponse carries either projection; the service decides
	// whether each ingredient object keeps its "name" key.
	DrinkResponse struct {
		ID     int64            `json:"id"`
		Title  string           `json:"title"`
		Recipe []map[string]any `json:"recipe"`
	}
)
