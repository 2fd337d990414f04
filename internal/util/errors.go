package util

import "errors"

// Kind is the machine-checkable error class carried alongside the human
// message. Clients branch on the kind; the message is display-only.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
)

// AppError pairs a Kind with a message. All validation failures in the
// attempt core are AppErrors; anything else is treated as unavailable.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrQuizNotFound     = &AppError{KindNotFound, "quiz not found"}
	ErrQuestionNotFound = &AppError{KindNotFound, "question not found"}
	ErrOptionNotFound   = &AppError{KindNotFound, "option not found"}
	ErrAttemptNotFound  = &AppError{KindNotFound, "attempt not found"}

	ErrQuestionNotInQuiz  = &AppError{KindInvalidInput, "question does not belong to this quiz"}
	ErrOptionNotInQuest   = &AppError{KindInvalidInput, "option does not belong to this question"}
	ErrNotCameraQuestion  = &AppError{KindInvalidInput, "question is not camera based"}
	ErrCameraQuestion     = &AppError{KindInvalidInput, "camera based question requires a camera answer"}
	ErrAttemptSubmitted   = &AppError{KindConflict, "quiz attempt already submitted"}
	ErrAnswerAlreadyGiven = &AppError{KindConflict, "answer already submitted for this question"}
	ErrResultNotReady     = &AppError{KindConflict, "quiz not yet submitted"}

	ErrStoreUnavailable = &AppError{KindUnavailable, "storage unavailable"}
)

// KindOf classifies any error for the transport layer.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnavailable
}
