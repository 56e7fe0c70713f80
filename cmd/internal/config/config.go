package config

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/sathi/prod/"

type Settings struct {
	DatabasePath string
	APIPrefix    string
	Port         string

	// Declared for token issuance compatibility with the clients.
	// No route enforces authentication.
	JWTSecret        string
	JWTExpirationMin int
}

// Load resolves settings from the environment. In production the vars come
// from SSM Parameter Store, otherwise from a local .env file if present.
func Load() *Settings {
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv()
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return &Settings{
		DatabasePath:     getEnv("DATABASE_PATH", "database.db"),
		APIPrefix:        getEnv("API_PREFIX", "/api/v1"),
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "your_jwt_secret"),
		JWTExpirationMin: getEnvInt("JWT_EXPIRATION_MIN", 60),
	}
}

// loadProdEnv exports every parameter under the app prefix as an env var.
func loadProdEnv() {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		if enverr := os.Setenv(key, *param.Value); enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		log.Warnf("env var %s is not an int, using default %d", key, fallback)
		return fallback
	}
	return n
}
