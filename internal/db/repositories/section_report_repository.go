package repositories

import (
	"context"
	"pauta_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type sectionReportRepository struct {
	repository
}

type SectionReportRepository interface {
	// Create returns an error matching ErrUniqueViolation when the section
	// was already reported.
	Create(ctx context.Context, request *models.SectionReport) (*models.SectionReport, error)
	GetOne(ctx context.Context, sectionID int64) (*models.SectionReport, error)
}

func NewSectionReportRepository(db *pg.DB) SectionReportRepository {
	return &sectionReportRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *sectionReportRepository) Create(ctx context.Context, request *models.SectionReport) (*models.SectionReport, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetOne(ctx, request.SectionID)
}

func (r *sectionReportRepository) GetOne(ctx context.Context, sectionID int64) (*models.SectionReport, error) {
	report := &models.SectionReport{}

	err := r.db.ModelContext(ctx, report).
		Where("section_id = ?", sectionID).
		Select()
	if err != nil {
		return nil, notFoundAsNil(err)
	}

	return report, nil
}
