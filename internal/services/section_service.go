package services

import (
	"context"
	"fmt"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/db/repositories"
	"time"
)

type sectionService struct {
	sectionRepository repositories.SectionRepository
	now               func() time.Time
}

type SectionService interface {
	Create(ctx context.Context, name, description string, expiration int) (*models.Section, error)
	GetManyWithVoteCounts(ctx context.Context, userID int64) ([]*models.SectionSummary, error)
}

func NewSectionService(sectionRepository repositories.SectionRepository) SectionService {
	return &sectionService{
		sectionRepository: sectionRepository,
		now:               time.Now,
	}
}

func (s *sectionService) Create(ctx context.Context, name, description string, expiration int) (*models.Section, error) {
	section, err := s.sectionRepository.Create(ctx, &models.Section{
		Name:        name,
		Description: description,
		Expiration:  expiration,
		StartAt:     s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	return section, nil
}

func (s *sectionService) GetManyWithVoteCounts(ctx context.Context, userID int64) ([]*models.SectionSummary, error) {
	sections, err := s.sectionRepository.GetManyWithVoteCounts(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get sections for user %d: %w", userID, err)
	}

	return sections, nil
}
