// Package cpf implements the Brazilian taxpayer ID (CPF) value object:
// sanitization, checksum validation, display formatting, masking, and
// salted hashing for storage/lookup.
package cpf

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when the input is not a checksum-valid CPF.
var ErrInvalid = errors.New("invalid CPF")

// CPF is a canonical, checksum-valid Brazilian taxpayer ID.
// The zero value is not valid; construct via Parse.
type CPF struct {
	digits string // exactly 11 decimal digits
}

// Parse sanitizes raw input (keeping digits only) and validates the checksum.
func Parse(raw string) (CPF, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) != 11 {
		return CPF{}, fmt.Errorf("%w: expected 11 digits, got %d", ErrInvalid, len(digits))
	}
	if allSame(digits) {
		return CPF{}, fmt.Errorf("%w: repeated digit sequence", ErrInvalid)
	}
	if !checksumValid(digits) {
		return CPF{}, fmt.Errorf("%w: checksum mismatch", ErrInvalid)
	}

	return CPF{digits: digits}, nil
}

// Canonical returns the 11-digit canonical form.
func (c CPF) Canonical() string {
	return c.digits
}

// IsZero reports whether the value is the uninitialized zero CPF.
func (c CPF) IsZero() bool {
	return c.digits == ""
}

// Formatted returns the display form NNN.NNN.NNN-NN.
func (c CPF) Formatted() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s.%s.%s-%s", c.digits[0:3], c.digits[3:6], c.digits[6:9], c.digits[9:11])
}

// Masked returns the log-safe form NNN.NNN.***-**.
// This is the only form allowed in logs, events, and error messages.
func (c CPF) Masked() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s.%s.***-**", c.digits[0:3], c.digits[3:6])
}

// Hash returns the hex-encoded salted SHA-256 of the canonical form.
// Used as the stored/indexed representation.
func (c CPF) Hash(salt string) string {
	if c.IsZero() {
		return ""
	}
	sum := sha256.Sum256([]byte(salt + c.digits))
	return hex.EncodeToString(sum[:])
}

// Equal reports whether two CPFs have the same canonical form.
func (c CPF) Equal(other CPF) bool {
	return c.digits == other.digits
}

// String returns the masked form so accidental logging never leaks the full ID.
func (c CPF) String() string {
	return c.Masked()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// checksumValid verifies both CPF check digits (positions 10 and 11).
func checksumValid(digits string) bool {
	return int(digits[9]-'0') == checkDigit(digits, 9) &&
		int(digits[10]-'0') == checkDigit(digits, 10)
}

// checkDigit computes the check digit over the first n positions with
// descending weights starting at n+1.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := sum * 10 % 11
	if d == 10 {
		return 0
	}
	return d
}
