package siteerrors

import (
	"net/http"

	"github.com/Rohini2302/Sk-enterprises/internal/shared/apperror"
)

var (
	ErrSiteNotFound = apperror.New(
		apperror.CodeNotFound,
		"site not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)

	ErrInvalidContractEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid contract_end_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
