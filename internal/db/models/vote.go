package models

type VoteStatus string

func (s VoteStatus) String() string {
	return string(s)
}

const (
	VoteStatusAbleToVote   VoteStatus = "ABLE_TO_VOTE"
	VoteStatusUnableToVote VoteStatus = "UNABLE_TO_VOTE"
)

type Vote struct {
	ID        int64      `json:"id" pg:",pk"`
	SectionID int64      `json:"sectionId" pg:",notnull"`
	UserID    int64      `json:"userId" pg:",notnull"`
	Vote      bool       `json:"vote" pg:",notnull,use_zero"`
	Status    VoteStatus `json:"status" pg:",notnull"`
}
