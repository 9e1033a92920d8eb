package bootstrap

import (
	"log/slog"

	"rentdesk/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present, then the environment. Missing .env
// is the normal case outside local development.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err.Error())
	}
	return config.LoadConfig()
}
