package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DBURL         string `env:"DB_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	CORSOrigin    string `env:"CORS_ORIGIN" envDefault:"http://localhost:8080"`
	ExportDir     string `env:"EXPORT_DIR"`
	Production    bool   `env:"PRODUCTION" envDefault:"false"`

	SMTP    SMTP
	Storage Storage
}

type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT" envDefault:"587"`
	From     string `env:"SMTP_FROM"`
	Password string `env:"SMTP_PASSWORD"`
}

type Storage struct {
	Endpoint     string `env:"S3_ENDPOINT"`
	Region       string `env:"AWS_REGION" envDefault:"us-east-1"`
	Bucket       string `env:"S3_BUCKET_NAME"`
	AccessKey    string `env:"AWS_ACCESS_KEY_ID"`
	SecretKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`
	PublicURL    string `env:"S3_PUBLIC_URL"`
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
