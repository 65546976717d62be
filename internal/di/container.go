package di

import (
	"context"
	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
	"pauta_voting_system/configs"
	"pauta_voting_system/internal/db/repositories"
	"pauta_voting_system/internal/services"
	"time"
)

func NewLogger(config configs.Logger, app configs.App) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "env": app.Environment},
	}
	return zap.Must(zaploki.New(context.Background(), lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}

// NewEligibilityGate prefers the external CPF service when one is configured.
func NewEligibilityGate(config configs.Eligibility, userRepository repositories.UserRepository, logger *zap.SugaredLogger) services.EligibilityGate {
	if config.URL != "" {
		logger.Infow("using http eligibility gate", "url", config.URL)
		return services.NewHTTPGate(config.URL, config.Timeout, userRepository)
	}

	logger.Infow("using random eligibility gate", "passProbability", config.PassProbability)
	return services.NewRandomGate(config.PassProbability, config.Seed)
}
