package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolationError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := fmt.Errorf("create vote: %w", &UniqueViolationError{Constraint: ConstraintVoteUserSection, Err: cause})

	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ConstraintVoteUserSection, ViolatedConstraint(err))
	assert.Empty(t, ViolatedConstraint(cause))
}

func TestTranslateError_PassesOtherErrorsThrough(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Same(t, cause, translateError(cause))
	assert.Nil(t, notFoundAsNil(pg.ErrNoRows))
	assert.Same(t, cause, notFoundAsNil(cause))
}
