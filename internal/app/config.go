package app

import (
	"github.com/cantinadirect/shipping-backend/internal/platform/envutil"
)

type Config struct {
	ListenAddress string
	Environment   string
	Version       string
	FixturesPath  string
}

func LoadConfig() Config {
	return Config{
		ListenAddress: envutil.String("LISTEN_ADDRESS", ":8080"),
		Environment:   envutil.String("APP_ENV", "development"),
		Version:       envutil.String("APP_VERSION", "dev"),
		FixturesPath:  envutil.String("SHIPMENT_FIXTURES", "configs/shipments.yaml"),
	}
}
