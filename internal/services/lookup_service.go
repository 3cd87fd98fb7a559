package services

import (
	"context"
	"strconv"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

type LookupServiceInterface interface {
	// Resolve maps a public identifier to a quiz, trying the slug column
	// first and falling back to the numeric primary key only when the
	// identifier is lexically an integer.
	Resolve(ctx context.Context, identifier string) (*db_models.Quiz, error)
}

type LookupService struct {
	quizRepo repositories.QuizRepository
}

func NewLookupService(quizRepo repositories.QuizRepository) *LookupService {
	return &LookupService{quizRepo: quizRepo}
}

func (s *LookupService) Resolve(ctx context.Context, identifier string) (*db_models.Quiz, error) {
	quiz, err := s.quizRepo.FindBySlug(ctx, identifier)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz != nil {
		return quiz, nil
	}

	id, convErr := strconv.ParseInt(identifier, 10, 64)
	if convErr != nil {
		return nil, utils.ErrQuizNotFound
	}
	quiz, err = s.quizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	return quiz, nil
}
