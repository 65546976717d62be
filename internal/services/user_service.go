package services

import (
	"context"
	"errors"
	"fmt"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/db/repositories"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepository repositories.UserRepository
	hashCost       int
}

type UserService interface {
	Register(ctx context.Context, name, cpf, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

func NewUserService(userRepository repositories.UserRepository) UserService {
	return &userService{
		userRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
	}
}

func (s *userService) Register(ctx context.Context, name, cpf, email, password string) (*models.User, error) {
	existing, err := s.userRepository.GetOneByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.userRepository.GetOneByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("get user by cpf: %w", err)
	}
	if existing != nil {
		return nil, ErrCPFTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepository.Create(ctx, &models.User{
		Name:     name,
		CPF:      cpf,
		Email:    email,
		Password: string(hash),
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		if repositories.ViolatedConstraint(err) == repositories.ConstraintUserCPF {
			return nil, ErrCPFTaken
		}
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepository.GetOneByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
