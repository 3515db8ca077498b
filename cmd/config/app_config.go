package config

import (
	"Coffee-Shop-API/internal/api/handlers"
	"Coffee-Shop-API/internal/api/presenters"
	"Coffee-Shop-API/internal/api/routes"
	"Coffee-Shop-API/internal/middleware"
	"Coffee-Shop-API/internal/utils"
	"Coffee-Shop-API/pkg/auth"
	"Coffee-Shop-API/pkg/drink"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler:      errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "${time} | ${status} | ${latency} | ${locals:requestid} | ${method} | ${path}\n",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	drinkRepository := drink.NewDrinkRepository(db)

	// Service
	authDomain := utils.GetConfig("AUTH_DOMAIN")
	authService := auth.NewAuthService(
		fmt.Sprintf("https://%s/", authDomain),
		utils.GetConfig("AUTH_AUDIENCE"),
		fmt.Sprintf("https://%s/.well-known/jwks.json", authDomain),
	)
	drinkService := drink.NewDrinkService(drinkRepository)

	// Handler
	drinkHandler := handlers.NewDrinkHandler(drinkService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		DrinkHandler: drinkHandler,
		Middleware:   middlewares,
		AuthService:  authService,
	}
	routesConfig.Setup()
	return app, nil
}

// errorHandler keeps unrouted paths and panics on the same envelope
// the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return presenters.ErrorResponse(c, code, err.Error())
}
