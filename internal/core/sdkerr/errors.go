// Package sdkerr defines the stable domain error taxonomy. Every failure
// that crosses a component boundary is an *Error carrying one of these
// codes; raw transport and on-chain failures are translated before they
// reach a caller.
package sdkerr

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind, decoupled from transport status codes
// and on-chain numeric errors.
type Code string

const (
	// Input errors
	CodeInvalidAddress     Code = "INVALID_ADDRESS"
	CodeInvalidAmount      Code = "INVALID_AMOUNT"
	CodeInvalidContactName Code = "INVALID_CONTACT_NAME"

	// Authorization / state errors
	CodeNotOperator        Code = "NOT_OPERATOR"
	CodeNotRecipient       Code = "NOT_RECIPIENT"
	CodeNotSender          Code = "NOT_SENDER"
	CodeTransferNotActive  Code = "TRANSFER_NOT_ACTIVE"
	CodeClaimWindowNotOpen Code = "CLAIM_WINDOW_NOT_OPEN"
	CodeClaimWindowClosed  Code = "CLAIM_WINDOW_CLOSED"
	CodeAccountPaused      Code = "ACCOUNT_PAUSED"
	CodeLimitExceeded      Code = "OPERATOR_LIMIT_EXCEEDED"

	// Resource errors
	CodeWalletNotFound   Code = "WALLET_NOT_FOUND"
	CodeWalletExists     Code = "WALLET_EXISTS"
	CodeNoAccount        Code = "NO_ACCOUNT"
	CodeTransferNotFound Code = "TRANSFER_NOT_FOUND"
	CodeContactNotFound  Code = "CONTACT_NOT_FOUND"
	CodeContactExists    Code = "CONTACT_EXISTS"

	// Funds errors
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"

	// Transport errors
	CodeTimeout      Code = "TIMEOUT"
	CodeNetworkError Code = "NETWORK_ERROR"
	CodeAPIError     Code = "API_ERROR"

	// Misc
	CodeUnsupportedCluster Code = "UNSUPPORTED_CLUSTER"
)

// Error is the unit of failure propagated across every component
// boundary. Terminal for the current command: no component recovers
// from one internally.
type Error struct {
	Code    Code   `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New builds an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code Code) bool {
	if e, ok := As(err); ok {
		return e.Code == code
	}
	return false
}

// Wrap coerces any error into an *Error, defaulting unknown failures
// to API_ERROR so no raw error escapes the boundary.
func Wrap(err error) *Error {
	if e, ok := As(err); ok {
		return e
	}
	return &Error{Code: CodeAPIError, Message: err.Error()}
}
