package services

import (
	"context"
	"errors"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/db/repositories"
	mock_repositories "pauta_voting_system/internal/db/repositories/mocks"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var sectionStart = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

type fixedGate struct {
	eligible bool
	err      error
	calls    atomic.Int32
}

func (g *fixedGate) Check(_ context.Context, _ int64) (bool, error) {
	g.calls.Add(1)
	return g.eligible, g.err
}

// memoryVotes enforces the (user, section) uniqueness the votes table has.
type memoryVotes struct {
	mu     sync.Mutex
	nextID int64
	votes  []*models.Vote
}

func (m *memoryVotes) Create(_ context.Context, request *models.Vote) (*models.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, vote := range m.votes {
		if vote.UserID == request.UserID && vote.SectionID == request.SectionID {
			return nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintVoteUserSection}
		}
	}

	m.nextID++
	created := *request
	created.ID = m.nextID
	m.votes = append(m.votes, &created)
	return &created, nil
}

func (m *memoryVotes) GetOne(_ context.Context, voteID int64) (*models.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, vote := range m.votes {
		if vote.ID == voteID {
			return vote, nil
		}
	}
	return nil, nil
}

func (m *memoryVotes) GetOneByUserAndSection(_ context.Context, userID, sectionID int64) (*models.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, vote := range m.votes {
		if vote.UserID == userID && vote.SectionID == sectionID {
			return vote, nil
		}
	}
	return nil, nil
}

func (m *memoryVotes) count(status models.VoteStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, vote := range m.votes {
		if vote.Status == status {
			n++
		}
	}
	return n
}

func newVoteServiceAt(
	sectionRepository repositories.SectionRepository,
	voteRepository repositories.VoteRepository,
	gate EligibilityGate,
	now time.Time,
) *voteService {
	service := NewVoteService(sectionRepository, voteRepository, gate, zap.NewNop().Sugar()).(*voteService)
	service.now = func() time.Time { return now }
	return service
}

func openSection() *models.Section {
	return &models.Section{ID: 1, Name: "Pauta", Description: "Descrição da pauta", Expiration: 10, StartAt: sectionStart}
}

func TestSubmitVote_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)
	ctx := context.Background()

	sectionRepo.EXPECT().GetOne(ctx, int64(1)).Return(openSection(), nil)
	voteRepo.EXPECT().GetOneByUserAndSection(ctx, int64(7), int64(1)).Return(nil, nil)
	voteRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, vote *models.Vote) (*models.Vote, error) {
		assert.Equal(t, models.VoteStatusAbleToVote, vote.Status)
		assert.True(t, vote.Vote)
		vote.ID = 42
		return vote, nil
	})

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: true}, sectionStart.Add(5*time.Minute))
	vote, err := service.SubmitVote(ctx, 1, 7, true)

	require.NoError(t, err)
	assert.Equal(t, int64(42), vote.ID)
	assert.Equal(t, int64(1), vote.SectionID)
	assert.Equal(t, int64(7), vote.UserID)
	assert.Equal(t, models.VoteStatusAbleToVote, vote.Status)
}

func TestSubmitVote_SectionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)
	gate := &fixedGate{eligible: true}

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(99)).Return(nil, nil)

	service := newVoteServiceAt(sectionRepo, voteRepo, gate, sectionStart)
	vote, err := service.SubmitVote(context.Background(), 99, 7, true)

	assert.Nil(t, vote)
	assert.ErrorIs(t, err, ErrSectionNotFound)
	assert.Equal(t, int32(0), gate.calls.Load())
}

func TestSubmitVote_SectionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)
	gate := &fixedGate{eligible: false}

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)

	service := newVoteServiceAt(sectionRepo, voteRepo, gate, sectionStart.Add(15*time.Minute))
	vote, err := service.SubmitVote(context.Background(), 1, 8, false)

	assert.Nil(t, vote)
	assert.ErrorIs(t, err, ErrSectionExpired)
	assert.Equal(t, int32(0), gate.calls.Load())
}

func TestSubmitVote_LastOpenInstantIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)
	voteRepo.EXPECT().GetOneByUserAndSection(gomock.Any(), int64(7), int64(1)).Return(nil, nil)
	voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, vote *models.Vote) (*models.Vote, error) {
		vote.ID = 1
		return vote, nil
	})

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: true}, sectionStart.Add(10*time.Minute))
	_, err := service.SubmitVote(context.Background(), 1, 7, true)

	assert.NoError(t, err)
}

func TestSubmitVote_DuplicateVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)
	voteRepo.EXPECT().GetOneByUserAndSection(gomock.Any(), int64(7), int64(1)).
		Return(&models.Vote{ID: 3, SectionID: 1, UserID: 7, Vote: true, Status: models.VoteStatusAbleToVote}, nil)

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: true}, sectionStart.Add(6*time.Minute))
	vote, err := service.SubmitVote(context.Background(), 1, 7, false)

	assert.Nil(t, vote)
	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestSubmitVote_LostRaceIsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)
	voteRepo.EXPECT().GetOneByUserAndSection(gomock.Any(), int64(7), int64(1)).Return(nil, nil)
	voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintVoteUserSection})

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: true}, sectionStart)
	_, err := service.SubmitVote(context.Background(), 1, 7, true)

	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestSubmitVote_UnableToVoteIsPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)
	voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, vote *models.Vote) (*models.Vote, error) {
		assert.Equal(t, models.VoteStatusUnableToVote, vote.Status)
		vote.ID = 5
		return vote, nil
	})

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: false}, sectionStart)
	vote, err := service.SubmitVote(context.Background(), 1, 7, true)

	require.NoError(t, err)
	assert.Equal(t, int64(5), vote.ID)
	assert.Equal(t, models.VoteStatusUnableToVote, vote.Status)
}

func TestSubmitVote_UnableToVoteAfterVotingIsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)
	voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintVoteUserSection})

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: false}, sectionStart)
	_, err := service.SubmitVote(context.Background(), 1, 7, true)

	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestSubmitVote_GateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)
	gateErr := errors.New("connection refused")

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil)

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{err: gateErr}, sectionStart)
	_, err := service.SubmitVote(context.Background(), 1, 7, true)

	assert.ErrorIs(t, err, gateErr)
	assert.NotErrorIs(t, err, ErrDuplicateVote)
}

func TestSubmitVote_StoreErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)
	dbErr := errors.New("connection reset")

	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(nil, dbErr)

	service := newVoteServiceAt(sectionRepo, voteRepo, &fixedGate{eligible: true}, sectionStart)
	_, err := service.SubmitVote(context.Background(), 1, 7, true)

	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "get section 1")
}

func TestSubmitVote_Scenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil).AnyTimes()
	votes := &memoryVotes{}
	gate := &fixedGate{eligible: true}
	ctx := context.Background()

	vote, err := newVoteServiceAt(sectionRepo, votes, gate, sectionStart.Add(5*time.Minute)).SubmitVote(ctx, 1, 7, true)
	require.NoError(t, err)
	assert.Equal(t, models.VoteStatusAbleToVote, vote.Status)

	_, err = newVoteServiceAt(sectionRepo, votes, gate, sectionStart.Add(6*time.Minute)).SubmitVote(ctx, 1, 7, false)
	assert.ErrorIs(t, err, ErrDuplicateVote)

	_, err = newVoteServiceAt(sectionRepo, votes, gate, sectionStart.Add(15*time.Minute)).SubmitVote(ctx, 1, 8, true)
	assert.ErrorIs(t, err, ErrSectionExpired)

	assert.Equal(t, 1, votes.count(models.VoteStatusAbleToVote))
	assert.Equal(t, 0, votes.count(models.VoteStatusUnableToVote))
}

func TestSubmitVote_ConcurrentSubmissionsForSamePair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	sectionRepo.EXPECT().GetOne(gomock.Any(), int64(1)).Return(openSection(), nil).AnyTimes()
	votes := &memoryVotes{}
	service := newVoteServiceAt(sectionRepo, votes, &fixedGate{eligible: true}, sectionStart.Add(time.Minute))

	const attempts = 50
	var successCount, duplicateCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := service.SubmitVote(context.Background(), 1, 7, true)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, ErrDuplicateVote):
				duplicateCount.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), successCount.Load())
	assert.Equal(t, int32(attempts-1), duplicateCount.Load())
	assert.Equal(t, 1, votes.count(models.VoteStatusAbleToVote))
}
