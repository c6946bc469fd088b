package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnknownClient       = errors.New("unknown client")
	ErrWrongSecret         = errors.New("wrong client secret")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrUnknownChallenge = errors.New("unknown challenge")
	ErrChallengeExpired = errors.New("challenge is expired")

	ErrUnknownGroup = errors.New("unknown configuration group")
)
