package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")

	// * Validation errors.
	ErrUserNotFound          = errors.New("user not found")
	ErrPackageNotFound       = errors.New("package not found")
	ErrPackageNotPurchasable = errors.New("package is not purchasable")

	// * Gateway errors.
	ErrGatewayRejected    = errors.New("payment gateway rejected the request")
	ErrGatewayUnreachable = errors.New("payment gateway is unreachable")

	// * Reconciliation errors.
	ErrOrderNotFound          = errors.New("no order matches the session token")
	ErrReconciliationConflict = errors.New("callback outcome conflicts with the order's terminal state")
)
