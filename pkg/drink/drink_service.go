package drink

import (
	"Coffee-Shop-API/domain"
	"Coffee-Shop-API/entities"
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type (
	DrinkService interface {
		GetDrinks(ctx context.Context) ([]domain.DrinkResponse, error)
		GetDrinksDetail(ctx context.Context) ([]domain.DrinkResponse, error)
		CreateDrink(ctx context.Context, req domain.CreateDrinkRequest) (domain.DrinkResponse, error)
		UpdateDrink(ctx context.Context, id int64, req domain.UpdateDrinkRequest) (domain.DrinkResponse, error)
		DeleteDrink(ctx context.Context, id int64) error
	}

	drinkService struct {
		drinkRepository DrinkRepository
	}
)

func NewDrinkService(drinkRepository DrinkRepository) DrinkService {
	return &drinkService{drinkRepository: drinkRepository}
}

func (s *drinkService) GetDrinks(ctx context.Context) ([]domain.DrinkResponse, error) {
	return s.listDrinks(ctx, false)
}

func (s *drinkService) GetDrinksDetail(ctx context.Context) ([]domain.DrinkResponse, error) {
	return s.listDrinks(ctx, true)
}

func (s *drinkService) listDrinks(ctx context.Context, detailed bool) ([]domain.DrinkResponse, error) {
	drinks, err := s.drinkRepository.GetDrinks(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.DrinkResponse, 0, len(drinks))
	for _, d := range drinks {
		projected, err := projectDrink(d, detailed)
		if err != nil {
			return nil, err
		}
		res = append(res, projected)
	}
	return res, nil
}

func (s *drinkService) CreateDrink(ctx context.Context, req domain.CreateDrinkRequest) (domain.DrinkResponse, error) {
	recipe, err := normalizeRecipe(req.Recipe)
	if err != nil {
		return domain.DrinkResponse{}, err
	}

	drink := &entities.Drink{
		Title:  req.Title,
		Recipe: recipe,
	}
	if err := s.drinkRepository.CreateDrink(ctx, drink); err != nil {
		return domain.DrinkResponse{}, err
	}

	return projectDrink(drink, true)
}

func (s *drinkService) UpdateDrink(ctx context.Context, id int64, req domain.UpdateDrinkRequest) (domain.DrinkResponse, error) {
	drink, err := s.drinkRepository.GetDrinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrinkResponse{}, domain.ErrDrinkNotFound
		}
		return domain.DrinkResponse{}, err
	}

	if req.Title != "" {
		drink.Title = req.Title
	}
	if req.Recipe != nil {
		recipe, err := normalizeRecipe(req.Recipe)
		if err != nil {
			return domain.DrinkResponse{}, err
		}
		drink.Recipe = recipe
	}

	if err := s.drinkRepository.UpdateDrink(ctx, drink); err != nil {
		return domain.DrinkResponse{}, err
	}

	return projectDrink(drink, true)
}

func (s *drinkService) DeleteDrink(ctx context.Context, id int64) error {
	if _, err := s.drinkRepository.GetDrinkByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDrinkNotFound
		}
		return err
	}
	return s.drinkRepository.DeleteDrink(ctx, id)
}

// normalizeRecipe requires the caller-supplied recipe to be a JSON array
// of objects and returns its canonical encoding for storage.
func normalizeRecipe(raw json.RawMessage) (string, error) {
	var ingredients []map[string]any
	if err := json.Unmarshal(raw, &ingredients); err != nil {
		return "", domain.ErrInvalidRecipe
	}
	if ingredients == nil {
		return "", domain.ErrInvalidRecipe
	}

	canonical, err := json.Marshal(ingredients)
	if err != nil {
		return "", domain.ErrInvalidRecipe
	}
	return string(canonical), nil
}

func projectDrink(drink *entities.Drink, detailed bool) (domain.DrinkResponse, error) {
	var ingredients []map[string]any
	if err := json.Unmarshal([]byte(drink.Recipe), &ingredients); err != nil {
		return domain.DrinkResponse{}, domain.ErrCorruptRecipe
	}

	if !detailed {
		short := make([]map[string]any, 0, len(ingredients))
		for _, ingredient := range ingredients {
			entry := make(map[string]any, len(ingredient))
			for key, value := range ingredient {
				if key == "name" {
					continue
				}
				entry[key] = value
			}
			short = append(short, entry)
		}
		ingredients = short
	}

	return domain.DrinkResponse{
		ID:     drink.ID,
		Title:  drink.Title,
		Recipe: ingredients,
	}, nil
}
