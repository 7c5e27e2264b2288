package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Every business failure unwraps to exactly one of these so the
// transport layer can pick a status without knowing individual errors.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrValueMismatch = errors.New("value mismatch")
)

// Machine readable codes surfaced to clients.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
	CodeForbidden             = "FORBIDDEN"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeTradeAlreadyExists    = "TRADE_ALREADY_EXISTS"
	CodeTradeValueDiffTooHigh = "TRADE_VALUE_DIFF_TOO_HIGH"
	CodeInternal              = "INTERNAL_SERVER_ERROR"
)

// DomainError is a business rule violation of a given kind.
type DomainError struct {
	Kind    error
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func newError(kind error, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Validation
var (
	ErrSelfTrade               = newError(ErrValidation, CodeValidation, "cannot trade with yourself")
	ErrReceiverRequired        = newError(ErrValidation, CodeValidation, "receiver identifier is required")
	ErrCardRequired            = newError(ErrValidation, CodeValidation, "pokemonCardId is required")
	ErrRequestNotPending       = newError(ErrValidation, CodeValidation, "trade request is not pending")
	ErrTradeNotPending         = newError(ErrValidation, CodeValidation, "trade no longer pending")
	ErrAlreadyAccepted         = newError(ErrValidation, CodeValidation, "you already accepted this trade")
	ErrMissingCards            = newError(ErrValidation, CodeValidation, "missing cards")
	ErrCardIDsRequired         = newError(ErrValidation, CodeValidation, "myUserCardId and opponentUserCardId are required")
	ErrOpponentCardMismatch    = newError(ErrValidation, CodeValidation, "opponent card does not match the opponent's selection")
	ErrUpdateNotPermitted      = newError(ErrValidation, CodeValidation, "update not permitted")
	ErrInvalidStatusTransition = newError(ErrValidation, CodeValidation, "invalid status transition")
	ErrInvalidStatus           = newError(ErrValidation, CodeValidation, "invalid status")
	ErrInvalidTradeType        = newError(ErrValidation, CodeValidation, "invalid trade type")
	ErrInvalidOrigin           = newError(ErrValidation, CodeValidation, "invalid trade origin")
	ErrInvalidPrice            = newError(ErrValidation, CodeValidation, "prices must not be negative")
)

// Not found
var (
	ErrUserNotFound         = newError(ErrNotFound, CodeNotFound, "user not found")
	ErrReceiverNotFound     = newError(ErrNotFound, CodeNotFound, "receiver not found")
	ErrTradeRequestNotFound = newError(ErrNotFound, CodeNotFound, "trade request not found")
	ErrTradeNotFound        = newError(ErrNotFound, CodeNotFound, "trade not found")
	ErrUserCardNotFound     = newError(ErrNotFound, CodeNotFound, "user card not found")
	ErrCardNotFound         = newError(ErrNotFound, CodeNotFound, "card not found")
	ErrNotificationNotFound = newError(ErrNotFound, CodeNotFound, "notification not found")
)

// Forbidden / unauthorized
var (
	ErrNotRequestReceiver  = newError(ErrForbidden, CodeForbidden, "only the receiver can respond to this trade request")
	ErrNotRequestSender    = newError(ErrForbidden, CodeForbidden, "only the sender can cancel this trade request")
	ErrNotTradeParticipant = newError(ErrForbidden, CodeForbidden, "cannot complete someone else's trade")
	ErrNotTradeMember      = newError(ErrForbidden, CodeForbidden, "not a participant in this trade")
	ErrUserCardNotOwned    = newError(ErrForbidden, CodeForbidden, "card does not belong to this user")
	ErrListForbidden       = newError(ErrForbidden, CodeForbidden, "cannot list another user's trade requests")
	ErrCallerRequired      = newError(ErrUnauthorized, CodeUnauthorized, "authentication required")
)

// Conflict
var ErrTradeAlreadyExists = newError(ErrConflict, CodeTradeAlreadyExists, "a pending trade request already exists between these users")

// ErrRoomCodeTaken is returned by repositories when a generated room code collides.
var ErrRoomCodeTaken = errors.New("room code already taken")

// ValueMismatchError rejects a quick trade whose two sides are too far apart in price.
type ValueMismatchError struct {
	Ratio        decimal.Decimal
	OfferedPrice decimal.Decimal
	TargetPrice  decimal.Decimal
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("trade value difference too high: %s (offered %s, target %s)",
		e.Ratio.StringFixed(3), e.OfferedPrice.StringFixed(2), e.TargetPrice.StringFixed(2))
}

func (e *ValueMismatchError) Unwrap() error {
	return ErrValueMismatch
}

// Code returns the client code for the error.
func (e *ValueMismatchError) Code() string {
	return CodeTradeValueDiffTooHigh
}

// IsBusinessError reports whether err is an expected rule violation rather than
// an infrastructure failure.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValueMismatch)
}
