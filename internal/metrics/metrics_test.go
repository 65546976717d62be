package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordVoteSubmission(t *testing.T) {
	before := testutil.ToFloat64(VoteSubmissions.WithLabelValues(VoteOutcomeDuplicate))

	RecordVoteSubmission(VoteOutcomeDuplicate)
	RecordVoteSubmission(VoteOutcomeDuplicate)

	assert.Equal(t, before+2, testutil.ToFloat64(VoteSubmissions.WithLabelValues(VoteOutcomeDuplicate)))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/votes", "201"))

	RecordAPIRequest("POST", "/votes", "201", 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/votes", "201")))
}

func TestRecordSectionReport(t *testing.T) {
	before := testutil.ToFloat64(SectionReports.WithLabelValues("tie"))

	RecordSectionReport("tie")

	assert.Equal(t, before+1, testutil.ToFloat64(SectionReports.WithLabelValues("tie")))
}
