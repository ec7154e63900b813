package config

import (
	"fmt"
	"os"

	"github.com/Nikhil-527/VidyaSetu/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	RazorpayKey    string
	RazorpaySecret string
	RazorpayEnv    string
	FrontendURL    string
}

// LoadConfig loads configuration from environment variables. A missing
// .env file is not an error in deployed environments where variables
// come from the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
		RazorpayEnv:    os.Getenv("RAZORPAY_ENV"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// InitDB initializes the database connection and migrates the schema
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	err = DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.UserOTP{},
		&models.BlacklistedToken{},
		&models.Payment{},
		&models.Admission{},
		&models.Notice{},
		&models.GalleryImage{},
		&models.ContactMessage{},
		&models.FeeStructure{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
