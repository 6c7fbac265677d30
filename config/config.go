package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug            bool   `envconfig:"debug"`
	Port             int    `envconfig:"port" default:"8080"`
	Env              string `envconfig:"env"`
	PostgresHost     string `envconfig:"postgres_host"`
	PostgresPort     int    `envconfig:"postgres_port"`
	PostgresUser     string `envconfig:"postgres_user"`
	PostgresPassword string `envconfig:"postgres_password"`
	PostgresDB       string `envconfig:"postgres_db"`
	JWTSecret        string `envconfig:"jwt_secret"`
	BaseUrl          string `envconfig:"base_url"`
	AwsRegion        string `envconfig:"aws_region"`
	AwsBucket        string `envconfig:"aws_bucket"`
	AwsAccessKeyID   string `envconfig:"aws_access_key_id"`
	AwsSecretKey     string `envconfig:"aws_secret_access_key"`
	FeedCacheTTLSecs int    `envconfig:"feed_cache_ttl_secs" default:"2"`
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("pressfeed", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
