package repositories

import (
	"context"
	"github.com/go-pg/pg/v10"
	"pauta_voting_system/internal/db/models"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	// Create returns an error matching ErrUniqueViolation when the user
	// already has a vote in the section.
	Create(ctx context.Context, request *models.Vote) (*models.Vote, error)
	GetOne(ctx context.Context, voteID int64) (*models.Vote, error)
	GetOneByUserAndSection(ctx context.Context, userID, sectionID int64) (*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetOne(ctx, request.ID)
}

func (r *voteRepository) GetOne(ctx context.Context, voteID int64) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.ModelContext(ctx, vote).
		Where("id = ?", voteID).
		Select()
	if err != nil {
		return nil, notFoundAsNil(err)
	}

	return vote, nil
}

func (r *voteRepository) GetOneByUserAndSection(ctx context.Context, userID, sectionID int64) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.ModelContext(ctx, vote).
		Where("user_id = ?", userID).
		Where("section_id = ?", sectionID).
		Select()
	if err != nil {
		return nil, notFoundAsNil(err)
	}

	return vote, nil
}
