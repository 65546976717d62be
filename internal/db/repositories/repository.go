package repositories

import (
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go -package=mock_repositories
//go:generate mockgen -source=section_repository.go -destination=mocks/section_repository.go -package=mock_repositories
//go:generate mockgen -source=vote_repository.go -destination=mocks/vote_repository.go -package=mock_repositories
//go:generate mockgen -source=section_report_repository.go -destination=mocks/section_report_repository.go -package=mock_repositories

const (
	ConstraintUserEmail        = "users_email_key"
	ConstraintUserCPF          = "users_cpf_key"
	ConstraintVoteUserSection  = "votes_user_id_section_id_key"
	ConstraintSectionReportKey = "section_reports_pkey"

	uniqueViolationCode = "23505"
)

var ErrUniqueViolation = errors.New("unique violation")

// UniqueViolationError is returned by Create methods when an insert hits a
// unique constraint. It matches ErrUniqueViolation with errors.Is.
type UniqueViolationError struct {
	Constraint string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s: %v", e.Constraint, e.Err)
}

func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Err
}

// ViolatedConstraint returns the constraint name carried by a unique violation, or "".
func ViolatedConstraint(err error) string {
	var uniqueErr *UniqueViolationError
	if errors.As(err, &uniqueErr) {
		return uniqueErr.Constraint
	}
	return ""
}

type repository struct {
	db *pg.DB
}

func translateError(err error) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() && pgErr.Field('C') == uniqueViolationCode {
		return &UniqueViolationError{Constraint: pgErr.Field('n'), Err: err}
	}
	return err
}

func notFoundAsNil(err error) error {
	if errors.Is(err, pg.ErrNoRows) {
		return nil
	}
	return err
}
