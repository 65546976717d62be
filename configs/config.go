package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type VotingAPIConfig struct {
	App         App
	DB          DB
	Logger      Logger
	HTTP        HTTP
	Eligibility Eligibility
}

type SectionResultServiceConfig struct {
	App      App
	DB       DB
	Logger   Logger
	Bot      Bot
	Reporter Reporter
}

func LoadVotingAPIConfig() (VotingAPIConfig, error) {
	var config VotingAPIConfig

	if err := parse(&config); err != nil {
		return VotingAPIConfig{}, err
	}

	return config, nil
}

func LoadSectionResultServiceConfig() (SectionResultServiceConfig, error) {
	var config SectionResultServiceConfig

	if err := parse(&config); err != nil {
		return SectionResultServiceConfig{}, err
	}

	return config, nil
}

func parse(config interface{}) error {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
