package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// Ошибки коробок и взносов
var (
	ErrBoxNotFound          = errors.New("box not found")
	ErrBoxNotAcceptingFunds = errors.New("box is not accepting contributions")
	ErrContributionNotFound = errors.New("contribution not found")
)

// Ошибки оплаты и расчета
var (
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrSessionNotFound          = errors.New("checkout session not found")
	ErrInvalidSignature         = errors.New("invalid webhook signature")
	ErrPaymentNotCompleted      = errors.New("payment not completed")
	ErrInvalidIntent            = errors.New("invalid settlement intent")
	ErrUnsupportedIntentVersion = errors.New("unsupported settlement intent version")
)

// Ошибки покеболов и паков
var (
	ErrInsufficientCredits = errors.New("insufficient pokeballs")
	ErrPackNotFound        = errors.New("pack not found")
)
