package crmerrors

import (
	"net/http"

	"github.com/Rohini2302/Sk-enterprises/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"client not found",
		http.StatusNotFound,
	)

	ErrLeadNotFound = apperror.New(
		apperror.CodeNotFound,
		"lead not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)

	ErrInvalidLeadStatus = apperror.New(
		apperror.CodeInvalidInput,
		"unknown lead status",
		http.StatusBadRequest,
	)

	ErrLeadAlreadyClosed = apperror.New(
		apperror.CodeInvalidState,
		"closed leads cannot change status",
		http.StatusBadRequest,
	)
)
