package configs

import "time"

// Eligibility selects the gate applied before a vote is recorded as able.
// When URL is set the gate asks that service for the voter's CPF status,
// otherwise a random draw with PassProbability is used.
type Eligibility struct {
	URL             string        `env:"ELIGIBILITY_URL"`
	Timeout         time.Duration `env:"ELIGIBILITY_TIMEOUT" envDefault:"3s"`
	PassProbability float64       `env:"ELIGIBILITY_PASS_PROBABILITY" envDefault:"0.7"`
	Seed            int64         `env:"ELIGIBILITY_SEED"`
}
