// Package validate holds the pure input checks that run before any
// network call: address encoding, amount parsing, unit conversion.
package validate

import (
	"math"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/silkyway/silk/internal/core/sdkerr"
)

// Address checks that s is a structurally valid base58 account address.
// Encoding only, no network call; field names the input in the error.
func Address(s, field string) error {
	if _, err := solana.PublicKeyFromBase58(s); err != nil {
		return sdkerr.New(sdkerr.CodeInvalidAddress, "Invalid %s address: %s", field, s)
	}
	return nil
}

// IsAddress reports whether s parses as a valid account address.
func IsAddress(s string) bool {
	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}

// Amount parses s as a positive decimal amount in display units.
func Amount(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, sdkerr.New(sdkerr.CodeInvalidAmount, "Amount must be a positive number, got: %s", s)
	}
	return n, nil
}

// RawAmount converts a display-unit amount to raw integer units for the
// given mint decimals.
func RawAmount(amount float64, decimals int) uint64 {
	return uint64(math.Round(amount * math.Pow10(decimals)))
}

// DisplayAmount converts raw integer units back to display units.
func DisplayAmount(raw uint64, decimals int) float64 {
	if decimals <= 0 {
		return float64(raw)
	}
	return float64(raw) / math.Pow10(decimals)
}
