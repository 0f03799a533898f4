package salarystructure

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	structureerrors "github.com/Rohini2302/Sk-enterprises/internal/salarystructure/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return structureerrors.ErrStructureAlreadyExists
		}
		if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_salary_structures_employee" {
			return structureerrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return structureerrors.ErrStructureAlreadyExists
	}

	return err
}
