package config

import (
	"os"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMongoDB  = "mongodb"

	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

// Config is the process configuration, read once from the environment.
type Config struct {
	Port          string
	AppEnv        string
	StorageDriver string
	DynamoDB      DynamoDBConfig
	Mongo         MongoConfig
	Payments      PaymentsConfig
	Auth          AuthConfig
	CORSOrigins   []string
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the service endpoint, e.g. http://dynamodb:8000 for DynamoDB Local.
	Endpoint      string
	ParcelsTable  string
	PaymentsTable string
	UsersTable    string
	RidersTable   string
}

type MongoConfig struct {
	URI      string
	Database string
}

type PaymentsConfig struct {
	Provider               string
	Mock                   bool
	StripeSecretKey        string
	MercadoPagoAccessToken string
	SiteDomain             string
	Currency               string
}

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// Load reads the configuration from the environment. Values from a .env
// file are already present when godotenv/autoload is imported by main.
func Load() Config {
	return Config{
		Port:          getenvDefault("PORT", "8080"),
		AppEnv:        getenvDefault("APP_ENV", "development"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			ParcelsTable:    getenvDefault("PARCELS_TABLE", "parcels"),
			PaymentsTable:   getenvDefault("PAYMENTS_TABLE", "payments"),
			UsersTable:      getenvDefault("USERS_TABLE", "users"),
			RidersTable:     getenvDefault("RIDERS_TABLE", "riders"),
		},
		Mongo: MongoConfig{
			URI:      getenvDefault("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getenvDefault("MONGODB_DATABASE", "zap_shift_db"),
		},
		Payments: PaymentsConfig{
			Provider:               strings.ToLower(getenvDefault("PAYMENT_PROVIDER", ProviderStripe)),
			Mock:                   isEnabled(os.Getenv("PAYMENT_GATEWAY_MOCK")),
			StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			SiteDomain:             strings.TrimRight(getenvDefault("SITE_DOMAIN", "http://localhost:5173"), "/"),
			Currency:               strings.ToLower(getenvDefault("CHECKOUT_CURRENCY", "usd")),
		},
		Auth: AuthConfig{
			JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer:   os.Getenv("AUTH_JWT_ISSUER"),
			JWTAudience: os.Getenv("AUTH_JWT_AUDIENCE"),
		},
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
