package repositories

import (
	"context"
	"fmt"
	"pauta_voting_system/internal/db/models"
	"time"

	"github.com/go-pg/pg/v10"
)

const sectionSummarySelectTemplate = `
SELECT s.id, s.name, s.description, s.expiration, s.start_at,
	(SELECT COUNT(v.id) FROM votes v WHERE v.section_id = s.id%[1]s) AS total_votes,
	(SELECT COUNT(v.id) FROM votes v WHERE v.section_id = s.id%[1]s AND v.vote = TRUE) AS votes_true,
	(SELECT COUNT(v.id) FROM votes v WHERE v.section_id = s.id%[1]s AND v.vote = FALSE) AS votes_false,
	EXISTS (SELECT 1 FROM votes v WHERE v.section_id = s.id AND v.user_id = ?0) AS has_voted,
	(?1 > s.start_at + make_interval(mins => s.expiration)) AS is_expired
FROM sections s`

var (
	// Counts every vote row, unable ones included.
	sectionSummarySelect = fmt.Sprintf(sectionSummarySelectTemplate, "")
	// Counts only votes whose status is ?2.
	sectionResultSelect = fmt.Sprintf(sectionSummarySelectTemplate, " AND v.status = ?2")
)

type sectionRepository struct {
	repository
}

type SectionRepository interface {
	Create(ctx context.Context, request *models.Section) (*models.Section, error)
	GetOne(ctx context.Context, sectionID int64) (*models.Section, error)
	// GetManyWithVoteCounts lists every section, newest first, with tallies
	// over all of its votes and whether userID already has a vote in it.
	GetManyWithVoteCounts(ctx context.Context, userID int64, now time.Time) ([]*models.SectionSummary, error)
	// GetManyExpiredUnreported lists sections past their window that have no
	// section report yet, oldest first. Tallies count able votes only.
	GetManyExpiredUnreported(ctx context.Context, now time.Time) ([]*models.SectionSummary, error)
}

func NewSectionRepository(db *pg.DB) SectionRepository {
	return &sectionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *sectionRepository) Create(ctx context.Context, request *models.Section) (*models.Section, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetOne(ctx, request.ID)
}

func (r *sectionRepository) GetOne(ctx context.Context, sectionID int64) (*models.Section, error) {
	section := &models.Section{}

	err := r.db.ModelContext(ctx, section).
		Where("id = ?", sectionID).
		Select()
	if err != nil {
		return nil, notFoundAsNil(err)
	}

	return section, nil
}

func (r *sectionRepository) GetManyWithVoteCounts(ctx context.Context, userID int64, now time.Time) ([]*models.SectionSummary, error) {
	sections := make([]*models.SectionSummary, 0)

	_, err := r.db.QueryContext(ctx, &sections,
		sectionSummarySelect+` ORDER BY s.start_at DESC, s.id DESC`,
		userID, now,
	)

	return sections, err
}

func (r *sectionRepository) GetManyExpiredUnreported(ctx context.Context, now time.Time) ([]*models.SectionSummary, error) {
	sections := make([]*models.SectionSummary, 0)

	_, err := r.db.QueryContext(ctx, &sections,
		sectionResultSelect+`
WHERE ?1 > s.start_at + make_interval(mins => s.expiration)
	AND NOT EXISTS (SELECT 1 FROM section_reports r WHERE r.section_id = s.id)
ORDER BY s.start_at ASC, s.id ASC`,
		0, now, models.VoteStatusAbleToVote,
	)

	return sections, err
}
