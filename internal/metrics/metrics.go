package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	VoteOutcomeAccepted        = "accepted"
	VoteOutcomeUnable          = "unable"
	VoteOutcomeDuplicate       = "duplicate"
	VoteOutcomeSectionNotFound = "section_not_found"
	VoteOutcomeSectionExpired  = "section_expired"
	VoteOutcomeError           = "error"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	VoteSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_submissions_total",
			Help: "Total number of vote submissions by outcome",
		},
		[]string{"outcome"},
	)

	SectionReports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "section_reports_total",
			Help: "Total number of section results reported",
		},
		[]string{"result"},
	)
)

func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordVoteSubmission(outcome string) {
	VoteSubmissions.WithLabelValues(outcome).Inc()
}

func RecordSectionReport(result string) {
	SectionReports.WithLabelValues(result).Inc()
}
