package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrUserHasHabit  = errors.New("user already has habit with such title")
	ErrWrongOwner    = errors.New("habit belongs to another user")

	ErrCompletionExists     = errors.New("completion for this day already exists")
	ErrCompletionNotFound   = errors.New("no completion recorded for this day")
	ErrCompletionDateFuture = errors.New("completion date is in the future")

	ErrStreakNotFound = errors.New("no streak recorded for this habit")
	ErrNoFreezesLeft  = errors.New("no streak freezes left")
)
