package models

import "time"

type Section struct {
	ID          int64     `json:"id" pg:",pk"`
	Name        string    `json:"name" pg:",notnull"`
	Description string    `json:"description" pg:",notnull"`
	Expiration  int       `json:"expiration" pg:",notnull"`
	StartAt     time.Time `json:"start_at" pg:",notnull"`
}

// ExpiresAt is the last instant at which the section still accepts votes.
func (s *Section) ExpiresAt() time.Time {
	return expiresAt(s.StartAt, s.Expiration)
}

func (s *Section) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}

// SectionSummary is a section with its vote tallies as seen by one user.
type SectionSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Expiration  int       `json:"expiration"`
	StartAt     time.Time `json:"start_at"`
	TotalVotes  int64     `json:"totalVotes" pg:"total_votes"`
	VotesTrue   int64     `json:"votesTrue" pg:"votes_true"`
	VotesFalse  int64     `json:"votesFalse" pg:"votes_false"`
	HasVoted    bool      `json:"hasVoted" pg:"has_voted"`
	IsExpired   bool      `json:"isExpired" pg:"is_expired"`
}

func (s *SectionSummary) ExpiresAt() time.Time {
	return expiresAt(s.StartAt, s.Expiration)
}

func expiresAt(startAt time.Time, minutes int) time.Time {
	return startAt.Add(time.Duration(minutes) * time.Minute)
}
