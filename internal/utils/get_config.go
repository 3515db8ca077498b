package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Identity provider configuration
	AuthDomain   string `yaml:"AUTH_DOMAIN"`
	AuthAudience string `yaml:"AUTH_AUDIENCE"`

	// Server configuration
	AppPort string `yaml:"APP_PORT"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the
// environment so deployments without a config file still work.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "AUTH_DOMAIN":
		value = config.AuthDomain
	case "AUTH_AUDIENCE":
		value = config.AuthAudience
	case "APP_PORT":
		value = config.AppPort
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
