package services

import (
	"context"
	"errors"
	"pauta_voting_system/internal/db/models"
	mock_repositories "pauta_voting_system/internal/db/repositories/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSectionService_CreateStartsNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	sectionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, section *models.Section) (*models.Section, error) {
		assert.Equal(t, sectionStart, section.StartAt)
		assert.Equal(t, 10, section.Expiration)
		section.ID = 1
		return section, nil
	})

	service := NewSectionService(sectionRepo).(*sectionService)
	service.now = func() time.Time { return sectionStart }

	section, err := service.Create(context.Background(), "Pauta", "Descrição da pauta", 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), section.ID)
	assert.Equal(t, "Pauta", section.Name)
}

func TestSectionService_GetManyWithVoteCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	summaries := []*models.SectionSummary{{ID: 1, TotalVotes: 5, VotesTrue: 3, VotesFalse: 2, HasVoted: true}}
	sectionRepo.EXPECT().GetManyWithVoteCounts(gomock.Any(), int64(1), sectionStart).Return(summaries, nil)

	service := NewSectionService(sectionRepo).(*sectionService)
	service.now = func() time.Time { return sectionStart }

	got, err := service.GetManyWithVoteCounts(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestSectionService_GetManyWithVoteCountsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("timeout")
	sectionRepo := mock_repositories.NewMockSectionRepository(ctrl)
	sectionRepo.EXPECT().GetManyWithVoteCounts(gomock.Any(), int64(1), gomock.Any()).Return(nil, dbErr)

	_, err := NewSectionService(sectionRepo).GetManyWithVoteCounts(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
}
