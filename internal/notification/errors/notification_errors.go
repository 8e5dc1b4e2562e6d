package notificationerrors

import (
	"net/http"

	"dosrobles-hr/internal/shared/apperror"
)

var (
	ErrRecipientRequired = apperror.New(
		apperror.CodeInvalidInput,
		"recipient_employee_id is required",
		http.StatusBadRequest,
	)
	ErrInvalidRecipientID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid recipient_employee_id",
		http.StatusBadRequest,
	)
	ErrInvalidSenderID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid sender_employee_id",
		http.StatusBadRequest,
	)
	ErrTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"type is required",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid notification type",
		http.StatusBadRequest,
	)
	ErrSubjectRequired = apperror.New(
		apperror.CodeInvalidInput,
		"subject is required",
		http.StatusBadRequest,
	)
	ErrBodyRequired = apperror.New(
		apperror.CodeInvalidInput,
		"body is required",
		http.StatusBadRequest,
	)
	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"invalid notification priority",
		http.StatusBadRequest,
	)
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrBroadcastPartialFailure = apperror.New(
		apperror.CodeInternalError,
		"one or more notifications could not be written",
		http.StatusInternalServerError,
	)
)
