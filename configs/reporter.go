package configs

type Reporter struct {
	Cron string `env:"SECTION_REPORT_CRON" envDefault:"* * * * *"`
}
