package drink

import (
	"Coffee-Shop-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DrinkRepository interface {
		GetDrinks(ctx context.Context) ([]*entities.Drink, error)
		GetDrinkByID(ctx context.Context, id int64) (*entities.Drink, error)
		CreateDrink(ctx context.Context, drink *entities.Drink) error
		UpdateDrink(ctx context.Context, drink *entities.Drink) error
		DeleteDrink(ctx context.Context, id int64) error
	}

	drinkRepository struct {
		db *gorm.DB
	}
)

func NewDrinkRepository(db *gorm.DB) DrinkRepository {
	return &drinkRepository{db: db}
}

func (r *drinkRepository) GetDrinks(ctx context.Context) ([]*entities.Drink, error) {
	var drinks []*entities.Drink
	if err := r.db.WithContext(ctx).Order("id asc").Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *drinkRepository) GetDrinkByID(ctx context.Context, id int64) (*entities.Drink, error) {
	var drink entities.Drink
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&drink).Error; err != nil {
		return nil, err
	}
	return &drink, nil
}

func (r *drinkRepository) CreateDrink(ctx context.Context, drink *entities.Drink) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(drink).Error
	})
}

func (r *drinkRepository) UpdateDrink(ctx context.Context, drink *entities.Drink) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(drink).Error
	})
}

func (r *drinkRepository) DeleteDrink(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&entities.Drink{}).Error
	})
}
