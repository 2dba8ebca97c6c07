package service

import "errors"

var (
	// ErrAlreadySubmitted: the learner already has an attempt for the quiz.
	ErrAlreadySubmitted = errors.New("quiz already submitted")
	// ErrReferenceNotFound: the submission references a quiz, question or answer that does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")
	// ErrInvalidSubmission: the submission itself is malformed, e.g. a question answered twice.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTransientStore: persistence failed; nothing was written and the call may be retried.
	ErrTransientStore = errors.New("temporary storage failure")
	// ErrInvalidQuiz: a quiz definition failed validation.
	ErrInvalidQuiz = errors.New("invalid quiz definition")
	// ErrReviewUnavailable: the essay review assistant is not configured or failed.
	ErrReviewUnavailable = errors.New("essay review unavailable")
)
