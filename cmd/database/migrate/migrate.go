package migration

import (
	"Coffee-Shop-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Drink{}); err != nil {
		log.Fatalf("Error migrating drink database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
