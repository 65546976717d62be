package configs

type App struct {
	Environment string `env:"ENVIRONMENT" envDefault:"prod"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
