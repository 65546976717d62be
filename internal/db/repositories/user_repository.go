package repositories

import (
	"context"
	"pauta_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	Create(ctx context.Context, request *models.User) (*models.User, error)
	GetOne(ctx context.Context, userID int64) (*models.User, error)
	GetOneByEmail(ctx context.Context, email string) (*models.User, error)
	GetOneByCPF(ctx context.Context, cpf string) (*models.User, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) Create(ctx context.Context, request *models.User) (*models.User, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetOne(ctx, request.ID)
}

func (r *userRepository) GetOne(ctx context.Context, userID int64) (*models.User, error) {
	return r.getOneWhere(ctx, "id = ?", userID)
}

func (r *userRepository) GetOneByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOneWhere(ctx, "email = ?", email)
}

func (r *userRepository) GetOneByCPF(ctx context.Context, cpf string) (*models.User, error) {
	return r.getOneWhere(ctx, "cpf = ?", cpf)
}

func (r *userRepository) getOneWhere(ctx context.Context, condition string, param interface{}) (*models.User, error) {
	user := &models.User{}

	err := r.db.ModelContext(ctx, user).
		Where(condition, param).
		Select()
	if err != nil {
		return nil, notFoundAsNil(err)
	}

	return user, nil
}
