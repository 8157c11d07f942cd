package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid acting user could be resolved for the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrAccountDisabled indicates that the acting user's account has been deactivated.
// A disabled account keeps its row and its events but loses access to derived data.
var ErrAccountDisabled = errors.New("account disabled")

// ErrForbidden indicates that the acting user lacks the admin role required
// by the requested operation.
var ErrForbidden = errors.New("forbidden")

// ErrBadCredentials indicates a failed email/password authentication attempt.
// Unknown email and wrong password both map here so login does not leak
// which addresses are registered.
var ErrBadCredentials = errors.New("invalid email or password")

// ErrRefreshTokenExpired indicates that the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrNoTransactions signals an account with zero purchases and zero deposits.
// It is a UX-visible state, not a failure: the transport layer renders it as
// an explicit "no transactions yet" marker instead of a bare empty list.
var ErrNoTransactions = errors.New("no transactions yet")
