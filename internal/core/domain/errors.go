package domain

import "errors"

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrPilotNotFound   = errors.New("pilot not found")
	ErrFactionNotFound = errors.New("faction not found")

	ErrPeriodNotFound      = errors.New("voting period not found")
	ErrNoOngoingPeriod     = errors.New("no ongoing voting period")
	ErrOngoingPeriodExists = errors.New("an ongoing voting period already exists")
	ErrPeriodArchived      = errors.New("voting period is archived")
	ErrJobNotInPeriod      = errors.New("job is not part of the ongoing voting period")
	ErrAlreadyVoted        = errors.New("pilot has already voted in this period")

	ErrInvalidPeriod = errors.New("invalid voting period data")
	ErrInvalidInput  = errors.New("invalid input")
)
