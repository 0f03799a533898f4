package employee

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	employeeerrors "github.com/Rohini2302/Sk-enterprises/internal/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_employee_number" {
			return employeeerrors.ErrEmployeeNumberTaken
		}
		return employeeerrors.ErrEmailTaken
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_employee_number") {
			return employeeerrors.ErrEmployeeNumberTaken
		}
		return employeeerrors.ErrEmailTaken
	}

	return err
}
