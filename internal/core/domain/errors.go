package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrVotingClosed       = errors.New("voting is closed")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrInvalidCandidateID = errors.New("invalid candidate id")
	ErrAlreadyVoted       = errors.New("voter has already cast a ballot")
	ErrIncompleteBallot   = errors.New("a candidate must be selected for every position")
	ErrInternal           = errors.New("internal server error")
)
