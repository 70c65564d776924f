package sdkerr

import (
	"regexp"
	"strconv"
)

// txFailedCode is the backend's generic "transaction failed" signal. The
// accompanying message is the channel for on-chain program errors, which
// embed a hex error number.
const txFailedCode = "TX_FAILED"

var hexCodePattern = regexp.MustCompile(`0x([0-9a-fA-F]+)`)

// FromAPI translates a structured backend error envelope into a domain
// error. Translation order:
//
//  1. TX_FAILED with a resolvable hex program-error number in the
//     message maps through the program error table.
//  2. Any other structured code passes through with the backend message
//     verbatim.
//  3. A bare message with no code becomes a generic API_ERROR.
func FromAPI(code, message string) *Error {
	if code != "" {
		if code == txFailedCode {
			if m := hexCodePattern.FindStringSubmatch(message); m != nil {
				if n, err := strconv.ParseUint(m[1], 16, 64); err == nil {
					if pe, ok := lookupProgramError(n); ok {
						return &Error{Code: pe.Code, Message: pe.Message}
					}
				}
			}
		}
		if message == "" {
			message = "Unknown API error"
		}
		return &Error{Code: Code(code), Message: message}
	}
	if message != "" {
		return &Error{Code: CodeAPIError, Message: message}
	}
	return &Error{Code: CodeAPIError, Message: "Unknown API error"}
}

// Timeout is the client-side timeout error.
func Timeout() *Error {
	return &Error{Code: CodeTimeout, Message: "Request timeout — is the Silkyway server running?"}
}

// Network is the connectivity-loss error.
func Network() *Error {
	return &Error{Code: CodeNetworkError, Message: "Network error — is the Silkyway server running?"}
}
