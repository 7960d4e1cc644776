package domain

import (
	dErrors "climbreg/pkg/domain-errors"
)

// IDCode is a national personal identification code that has passed checksum
// validation. ParseIDCode is the only way to obtain one, so holders never
// need to re-validate it.
type IDCode string

// idCodeLength is the number of digits in a personal identification code.
const idCodeLength = 11

// ParseIDCode validates s and returns it as an IDCode.
func ParseIDCode(s string) (IDCode, error) {
	if !IsValidIDCode(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid id code")
	}
	return IDCode(s), nil
}

// String returns the code's digits.
func (c IDCode) String() string {
	return string(c)
}

// IsNil reports whether the code is empty.
func (c IDCode) IsNil() bool {
	return c == ""
}

// IsValidIDCode reports whether code is exactly eleven ASCII digits whose last
// digit matches the two-pass modulo 11 checksum over the first ten.
func IsValidIDCode(code string) bool {
	if len(code) != idCodeLength {
		return false
	}

	var digits [idCodeLength]int
	for i := 0; i < idCodeLength; i++ {
		ch := code[i]
		if ch < '0' || ch > '9' {
			return false
		}
		digits[i] = int(ch - '0')
	}
	check := digits[idCodeLength-1]

	first := checksum(digits[:idCodeLength-1], 0)
	if first != 10 {
		return check == first
	}
	// A first-pass remainder of 10 is retried with weights shifted by two.
	return check == checksum(digits[:idCodeLength-1], 2)
}

// checksum weights digit i with ((i+shift) mod 9)+1 and returns the sum mod 11.
func checksum(digits []int, shift int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (((i + shift) % 9) + 1)
	}
	return sum % 11
}
