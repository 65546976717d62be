package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SectionResult string

func (r SectionResult) String() string {
	return string(r)
}

const (
	SectionResultApproved SectionResult = "approved"
	SectionResultRejected SectionResult = "rejected"
	SectionResultTie      SectionResult = "tie"
)

type SectionReport struct {
	SectionID  int64         `json:"section_id" pg:",pk"`
	Result     SectionResult `json:"result" pg:",notnull"`
	TotalVotes int64         `json:"total_votes" pg:",notnull,use_zero"`
	VotesTrue  int64         `json:"votes_true" pg:",notnull,use_zero"`
	VotesFalse int64         `json:"votes_false" pg:",notnull,use_zero"`
	ReportedAt time.Time     `json:"reported_at" pg:",notnull"`
}

// ResultOf decides a section outcome from its able votes.
func ResultOf(votesTrue, votesFalse int64) SectionResult {
	switch {
	case votesTrue > votesFalse:
		return SectionResultApproved
	case votesFalse > votesTrue:
		return SectionResultRejected
	default:
		return SectionResultTie
	}
}

var sectionResultLabels = map[SectionResult]string{
	SectionResultApproved: "aprovada",
	SectionResultRejected: "rejeitada",
	SectionResultTie:      "empatada",
}

func (r SectionResult) Label() string {
	if label, ok := sectionResultLabels[r]; ok {
		return label
	}
	return r.String()
}

func (r SectionResult) CapitalizedLabel() string {
	return cases.Title(language.BrazilianPortuguese).String(r.Label())
}
