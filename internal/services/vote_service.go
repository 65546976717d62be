package services

import (
	"context"
	"errors"
	"fmt"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/db/repositories"
	"pauta_voting_system/internal/metrics"
	"time"

	"go.uber.org/zap"
)

type voteService struct {
	sectionRepository repositories.SectionRepository
	voteRepository    repositories.VoteRepository
	gate              EligibilityGate
	logger            *zap.SugaredLogger
	now               func() time.Time
}

type VoteService interface {
	// SubmitVote records at most one vote per user and section. A user the
	// eligibility gate rejects still gets a row, with status UNABLE_TO_VOTE.
	SubmitVote(ctx context.Context, sectionID, userID int64, choice bool) (*models.Vote, error)
}

func NewVoteService(
	sectionRepository repositories.SectionRepository,
	voteRepository repositories.VoteRepository,
	gate EligibilityGate,
	logger *zap.SugaredLogger,
) VoteService {
	return &voteService{
		sectionRepository: sectionRepository,
		voteRepository:    voteRepository,
		gate:              gate,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *voteService) SubmitVote(ctx context.Context, sectionID, userID int64, choice bool) (*models.Vote, error) {
	vote, outcome, err := s.submit(ctx, sectionID, userID, choice)
	metrics.RecordVoteSubmission(outcome)
	return vote, err
}

func (s *voteService) submit(ctx context.Context, sectionID, userID int64, choice bool) (*models.Vote, string, error) {
	section, err := s.sectionRepository.GetOne(ctx, sectionID)
	if err != nil {
		return nil, metrics.VoteOutcomeError, fmt.Errorf("get section %d: %w", sectionID, err)
	}
	if section == nil {
		return nil, metrics.VoteOutcomeSectionNotFound, ErrSectionNotFound
	}
	if section.IsExpired(s.now()) {
		return nil, metrics.VoteOutcomeSectionExpired, ErrSectionExpired
	}

	eligible, err := s.gate.Check(ctx, userID)
	if err != nil {
		return nil, metrics.VoteOutcomeError, fmt.Errorf("check eligibility of user %d: %w", userID, err)
	}

	vote := &models.Vote{
		SectionID: sectionID,
		UserID:    userID,
		Vote:      choice,
		Status:    models.VoteStatusAbleToVote,
	}

	if !eligible {
		vote.Status = models.VoteStatusUnableToVote
		s.logger.Infow("user is unable to vote", "userID", userID, "sectionID", sectionID)

		created, err := s.create(ctx, vote)
		if err != nil {
			return nil, outcomeOf(err), err
		}
		return created, metrics.VoteOutcomeUnable, nil
	}

	existing, err := s.voteRepository.GetOneByUserAndSection(ctx, userID, sectionID)
	if err != nil {
		return nil, metrics.VoteOutcomeError, fmt.Errorf("get vote of user %d in section %d: %w", userID, sectionID, err)
	}
	if existing != nil {
		return nil, metrics.VoteOutcomeDuplicate, ErrDuplicateVote
	}

	created, err := s.create(ctx, vote)
	if err != nil {
		return nil, outcomeOf(err), err
	}

	return created, metrics.VoteOutcomeAccepted, nil
}

func (s *voteService) create(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	created, err := s.voteRepository.Create(ctx, vote)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrDuplicateVote
	}
	if err != nil {
		return nil, fmt.Errorf("create vote: %w", err)
	}

	return created, nil
}

func outcomeOf(err error) string {
	if errors.Is(err, ErrDuplicateVote) {
		return metrics.VoteOutcomeDuplicate
	}
	return metrics.VoteOutcomeError
}
