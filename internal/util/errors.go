package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSectionNotFound    = errors.New("section not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrTestNotFound       = errors.New("practice test not found")
	ErrInvalidTransition  = errors.New("invalid practice test status transition")
	ErrTestCompleted      = errors.New("practice test already completed")
	ErrGenerationPending  = errors.New("a generation request is already in flight, try again shortly")
	ErrNoActiveAttempt    = errors.New("no active timed attempt for this section")
	ErrAnswerNotInChoices = errors.New("correct answer must be one of the answer choices")
)
