package services

import "errors"

var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrSectionExpired     = errors.New("section expired")
	ErrDuplicateVote      = errors.New("user already voted in this section")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrCPFTaken           = errors.New("cpf already registered")
)
