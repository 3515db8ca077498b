package routes

import (
	"Coffee-Shop-API/domain"
	"Coffee-Shop-API/internal/api/handlers"
	"Coffee-Shop-API/internal/middleware"
	"Coffee-Shop-API/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	DrinkHandler handlers.DrinkHandler
	Middleware   middleware.Middleware
	AuthService  auth.AuthService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Drinks()
}

func (c *Config) Drinks() {
	c.App.Get("/drinks", c.DrinkHandler.GetDrinks)
	c.App.Get("/drinks-detail",
		c.Middleware.RequirePermission(c.AuthService, domain.PermissionGetDrinksDetail),
		c.DrinkHandler.GetDrinksDetail)
	c.App.Post("/drinks",
		c.Middleware.RequirePermission(c.AuthService, domain.PermissionPostDrinks),
		c.DrinkHandler.CreateDrink)
	c.App.Patch("/drinks/:id",
		c.Middleware.RequirePermission(c.AuthService, domain.PermissionPatchDrinks),
		c.DrinkHandler.UpdateDrink)
	c.App.Delete("/drinks/:id",
		c.Middleware.RequirePermission(c.AuthService, domain.PermissionDeleteDrinks),
		c.DrinkHandler.DeleteDrink)
}
