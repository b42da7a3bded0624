package dto

import "errors"

// Locally recoverable submission errors.
var (
	ErrEmptyInput = errors.New("message text is empty")
	ErrBusy       = errors.New("a reply is already in progress for this conversation")
)

// Not-found sentinels.
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrTrashRecordNotFound  = errors.New("trash record not found")
)

// ErrMessageNotDeletable is returned when a non-user message is targeted for
// deletion; assistant messages are not independently deletable.
var ErrMessageNotDeletable = errors.New("only user messages can be deleted")

// CollaboratorError wraps any failure of the remote completion call. Detail is
// for logs; Error() is safe to show the user.
type CollaboratorError struct {
	Detail error
}

func (e *CollaboratorError) Error() string {
	return "Failed to send message. Please try again."
}

func (e *CollaboratorError) Unwrap() error {
	return e.Detail
}
